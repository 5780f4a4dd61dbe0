package models

// Contact is a single phonebook row. Names are not unique: every row whose
// name matches exactly is affected by update, query and delete.
type Contact struct {
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
}
