package models

// Project is a portfolio entry shown in the projects section.
// Technologies is a comma separated list kept as free text.
type Project struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"type:text;not null"`
	Description  string  `json:"description" gorm:"type:text;not null"`
	Technologies string  `json:"technologies" gorm:"type:text;not null"`
	GithubLink   *string `json:"github_link" gorm:"type:text"`
	LiveLink     *string `json:"live_link" gorm:"type:text"`
	ImageURL     *string `json:"image_url" gorm:"column:image_url;type:text"`
}

func (Project) TableName() string {
	return "projects"
}
