package models

// DepartmentSortFields are the columns a department list may be sorted by.
var DepartmentSortFields = []string{"id", "name"}

// DepartmentRequired lists the fields create and update insist on.
var DepartmentRequired = []string{"name"}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Fields exposes the department as the flat map the contract validates.
func (d Department) Fields() map[string]string {
	return map[string]string{"name": d.Name}
}
