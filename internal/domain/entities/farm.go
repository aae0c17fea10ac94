package entities

import "time"

// Farm representa uma fazenda (tenant) no sistema
type Farm struct {
	ID           int       `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID       int       `json:"user_id" gorm:"column:userId"`
	Name         string    `json:"name" gorm:"column:name"`
	Region       string    `json:"region" gorm:"column:region"`
	State        string    `json:"state" gorm:"column:state"`
	SizeHectares int       `json:"size_hectares" gorm:"column:sizeHectares"`
	AnimalCount  int       `json:"animal_count" gorm:"column:animalCount"`
	FarmType     string    `json:"farm_type" gorm:"column:farmType;default:cattle"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:createdAt"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updatedAt"`
}

func (Farm) TableName() string {
	return "farms"
}
