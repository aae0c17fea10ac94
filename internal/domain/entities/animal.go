package entities

import "time"

// Status possíveis de um animal
const (
	AnimalActive     = "active"
	AnimalSold       = "sold"
	AnimalDeceased   = "deceased"
	AnimalQuarantine = "quarantine"
)

// Animal representa um animal do rebanho de uma fazenda
type Animal struct {
	ID            int        `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	FarmID        int        `json:"farm_id" gorm:"column:farmId"`
	TagID         string     `json:"tag_id" gorm:"column:tagId"`
	Name          string     `json:"name,omitempty" gorm:"column:name"`
	Species       string     `json:"species" gorm:"column:species"`
	Breed         string     `json:"breed,omitempty" gorm:"column:breed"`
	Sex           string     `json:"sex" gorm:"column:sex"`
	BirthDate     *time.Time `json:"birth_date,omitempty" gorm:"column:birthDate;type:date"`
	BirthWeight   int        `json:"birth_weight,omitempty" gorm:"column:birthWeight"`
	CurrentWeight int        `json:"current_weight,omitempty" gorm:"column:currentWeight"`
	Status        string     `json:"status" gorm:"column:status;default:active"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:createdAt"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updatedAt"`

	// Relações
	Weighings []Weighing `json:"weighings,omitempty" gorm:"foreignKey:AnimalID"`
}

func (Animal) TableName() string {
	return "animals"
}

// Weighing representa uma pesagem registrada para um animal
type Weighing struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AnimalID  int       `json:"animal_id" gorm:"column:animalId"`
	Weight    int       `json:"weight" gorm:"column:weight"`
	Date      time.Time `json:"date" gorm:"column:date;type:date"`
	Notes     string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt"`
}

func (Weighing) TableName() string {
	return "weighings"
}
