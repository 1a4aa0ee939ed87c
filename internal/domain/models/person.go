package models

import (
	"strconv"
	"time"
)

// HireDateLayout is the wire and column format of hire_date.
const HireDateLayout = "2006-01-02"

var PersonSortFields = []string{
	"id", "first_name", "last_name", "hire_date", "job_id", "department_id", "manager_id",
}

var PersonRequired = []string{"first_name", "last_name", "hire_date", "job_id", "department_id"}

// Person is the stored row. ManagerID is nil for the top of the chart.
type Person struct {
	ID           int64  `json:"id"`
	JobID        int64  `json:"job_id"`
	DepartmentID int64  `json:"department_id"`
	ManagerID    *int64 `json:"manager_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	HireDate     string `json:"hire_date"`
}

// Fields renders numeric references as strings; zero means absent.
func (p Person) Fields() map[string]string {
	return map[string]string{
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"hire_date":     p.HireDate,
		"job_id":        idString(p.JobID),
		"department_id": idString(p.DepartmentID),
	}
}

// ValidHireDate reports whether HireDate parses as YYYY-MM-DD.
func (p Person) ValidHireDate() bool {
	_, err := time.Parse(HireDateLayout, p.HireDate)
	return err == nil
}

func idString(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// PersonRef is the short form of a manager inside PersonInfo.
type PersonRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// PersonInfo is the read view of a person with its job, department and
// manager resolved.
type PersonInfo struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	HireDate   string     `json:"hire_date"`
	Job        Job        `json:"job"`
	Department Department `json:"department"`
	Manager    *PersonRef `json:"manager"`
}
