package models

var JobSortFields = []string{"id", "title"}

var JobRequired = []string{"title"}

type Job struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (j Job) Fields() map[string]string {
	return map[string]string{"title": j.Title}
}
