package models

// Trade is a craft/trade reference row (electrician, welder, ...).
type Trade struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Region is a service-area reference row.
type Region struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
