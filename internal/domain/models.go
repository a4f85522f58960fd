package domain

// Сидовая запись, существующая всё время жизни процесса
const (
	SeedEntryID   int64 = 0
	SeedEntryName       = "Datadog"
)

type Entry struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"type:text;not null"`
}

func (Entry) TableName() string {
	return "entries"
}
