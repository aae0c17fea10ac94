package database

import (
	"log"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/utils"
	"gorm.io/gorm"
)

// Seed popula os dados de referência: catálogo ESG e desafios iniciais.
// Idempotente: não insere nada quando as tabelas já têm registros.
func Seed(db *gorm.DB) error {
	if err := seedChecklists(db); err != nil {
		return err
	}
	return seedChallenges(db)
}

func seedChecklists(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.ESGChecklist{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	checklists := []entities.ESGChecklist{
		// Ambiental
		{Title: "Possui sistema de tratamento de efluentes?", Description: "Tratamento adequado de dejetos e águas residuais", Category: entities.CategoryEnvironmental, MaxPoints: 10, IsActive: true},
		{Title: "Utiliza energia renovável (solar, eólica)?", Description: "Uso de fontes de energia limpa e renovável", Category: entities.CategoryEnvironmental, MaxPoints: 10, IsActive: true},
		{Title: "Realiza rotação de pastagens?", Description: "Sistema de manejo que preserva o solo e a vegetação", Category: entities.CategoryEnvironmental, MaxPoints: 8, IsActive: true},
		{Title: "Possui área de preservação permanente (APP)?", Description: "Manutenção de áreas de mata nativa e nascentes", Category: entities.CategoryEnvironmental, MaxPoints: 10, IsActive: true},
		{Title: "Faz compostagem de resíduos orgânicos?", Description: "Reaproveitamento de resíduos para adubo orgânico", Category: entities.CategoryEnvironmental, MaxPoints: 7, IsActive: true},
		{Title: "Utiliza sistema de captação de água da chuva?", Description: "Aproveitamento de água pluvial para reduzir consumo", Category: entities.CategoryEnvironmental, MaxPoints: 8, IsActive: true},

		// Social
		{Title: "Oferece treinamento regular aos funcionários?", Description: "Capacitação e desenvolvimento profissional da equipe", Category: entities.CategorySocial, MaxPoints: 8, IsActive: true},
		{Title: "Possui equipamentos de proteção individual (EPIs)?", Description: "Fornecimento e uso obrigatório de EPIs", Category: entities.CategorySocial, MaxPoints: 10, IsActive: true},
		{Title: "Oferece benefícios além do salário (plano de saúde, vale-alimentação)?", Description: "Benefícios adicionais para bem-estar dos colaboradores", Category: entities.CategorySocial, MaxPoints: 7, IsActive: true},
		{Title: "Respeita as normas de bem-estar animal?", Description: "Manejo humanizado e condições adequadas para os animais", Category: entities.CategorySocial, MaxPoints: 10, IsActive: true},
		{Title: "Participa de programas sociais da comunidade?", Description: "Engajamento com a comunidade local", Category: entities.CategorySocial, MaxPoints: 5, IsActive: true},

		// Governança
		{Title: "Possui registros financeiros organizados?", Description: "Controle financeiro e contábil adequado", Category: entities.CategoryGovernance, MaxPoints: 8, IsActive: true},
		{Title: "Mantém documentação sanitária em dia?", Description: "GTA, vacinas e documentos sanitários atualizados", Category: entities.CategoryGovernance, MaxPoints: 10, IsActive: true},
		{Title: "Realiza auditorias internas regulares?", Description: "Avaliação periódica de processos e conformidade", Category: entities.CategoryGovernance, MaxPoints: 7, IsActive: true},
		{Title: "Possui certificações de qualidade (orgânico, Rainforest, etc)?", Description: "Certificações reconhecidas de boas práticas", Category: entities.CategoryGovernance, MaxPoints: 10, IsActive: true},
		{Title: "Tem plano de sucessão familiar/empresarial?", Description: "Planejamento para continuidade do negócio", Category: entities.CategoryGovernance, MaxPoints: 5, IsActive: true},
	}

	if err := db.Create(&checklists).Error; err != nil {
		return err
	}

	log.Printf("🌱 %d perguntas do catálogo ESG criadas", len(checklists))
	return nil
}

func seedChallenges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Challenge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().In(utils.GetBrasilLocation())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	challenges := []entities.Challenge{
		{
			Title:       "Mestre da Eficiência",
			Description: "Registre todas as transações financeiras por 30 dias consecutivos",
			Category:    "financial",
			Points:      100,
			TargetValue: 30,
			StartDate:   today,
			EndDate:     today.AddDate(0, 0, 30),
			IsActive:    true,
		},
		{
			Title:       "Guardião do Rebanho",
			Description: "Registre pesagens semanais de todos os animais por 1 mês",
			Category:    "management",
			Points:      150,
			TargetValue: 4,
			StartDate:   today,
			EndDate:     today.AddDate(0, 0, 30),
			IsActive:    true,
		},
		{
			Title:       "Campeão ESG",
			Description: "Alcance score ESG de 70 pontos ou mais",
			Category:    "esg",
			Points:      200,
			TargetValue: 70,
			StartDate:   today,
			EndDate:     today.AddDate(0, 0, 60),
			IsActive:    true,
		},
	}

	if err := db.Create(&challenges).Error; err != nil {
		return err
	}

	log.Printf("🌱 %d desafios iniciais criados", len(challenges))
	return nil
}
