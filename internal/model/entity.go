package model

import "time"

type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:20;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// APIKey is an opaque secret credential. Validity is existence; no expiry.
type APIKey struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    *int      `json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Key       string    `gorm:"column:api_key;size:255;uniqueIndex" json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

type Task struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      int       `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;default:pending" json:"status"`
	DueDate     Date      `gorm:"type:date" json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Project struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ClientName  string `gorm:"size:255" json:"client_name"`
	StartDate   Date   `gorm:"type:date" json:"start_date"`
	EndDate     Date   `gorm:"type:date" json:"end_date"`
	Status      string `gorm:"size:20;default:active" json:"status"`
	Progress    int    `gorm:"default:0" json:"progress"`
}

type Team struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	AvatarURL   string `gorm:"size:255" json:"avatar_url"`
}

type TeamMember struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Role      string `gorm:"size:100" json:"role"`
	Email     string `gorm:"size:100;uniqueIndex" json:"email"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	TeamID    *int   `json:"team_id"`
	Team      *Team  `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"-"`
}

type Milestone struct {
	ID        int      `gorm:"primaryKey" json:"id"`
	ProjectID int      `gorm:"not null;index" json:"project_id"`
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string   `gorm:"size:255;not null" json:"title"`
	Date      Date     `gorm:"type:date" json:"date"`
	Completed bool     `gorm:"default:false" json:"completed"`
}

// ProjectTeam links projects to team members. The composite primary key makes
// re-assignment of an existing pair a no-op insert.
type ProjectTeam struct {
	ProjectID    int         `gorm:"primaryKey" json:"project_id"`
	Project      *Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	TeamMemberID int         `gorm:"primaryKey" json:"team_member_id"`
	TeamMember   *TeamMember `gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string        { return "users" }
func (APIKey) TableName() string      { return "api_keys" }
func (Task) TableName() string        { return "tasks" }
func (Project) TableName() string     { return "projects" }
func (Team) TableName() string        { return "teams" }
func (TeamMember) TableName() string  { return "team_members" }
func (Milestone) TableName() string   { return "milestones" }
func (ProjectTeam) TableName() string { return "project_team" }

// All lists every entity for AutoMigrate, parents before children so foreign
// keys resolve on first provisioning.
func All() []any {
	return []any{
		&User{}, &Team{}, &Project{},
		&APIKey{}, &Task{}, &TeamMember{}, &Milestone{}, &ProjectTeam{},
	}
}
