package entity

type Equipment struct {
	ID    int64  `json:"id" db:"id"`
	Type  string `json:"equipment_type" db:"equipment_type"`
	Price int64  `json:"price" db:"price"`
}
