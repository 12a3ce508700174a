package model

// Request/response shapes. Update payloads use pointer fields so an absent
// field is distinguishable from a present-but-zero one: only supplied fields
// are written back.

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// LoginRequest binds the form-encoded body of POST /auth/token.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

type TaskCreate struct {
	UserID      int    `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed archived"`
	DueDate     Date   `json:"due_date"`
}

type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed archived"`
	DueDate     *Date   `json:"due_date"`
}

type ProjectCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	Status      string `json:"status"`
	Progress    int    `json:"progress" binding:"omitempty,min=0,max=100"`
}

type ProjectUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ClientName  *string `json:"client_name"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress" binding:"omitempty,min=0,max=100"`
}

type TeamCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

type TeamUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	AvatarURL   *string `json:"avatar_url"`
}

type TeamMemberCreate struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatar_url"`
	TeamID    *int   `json:"team_id"`
}

type TeamMemberUpdate struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Email     *string `json:"email" binding:"omitempty,email"`
	AvatarURL *string `json:"avatar_url"`
	TeamID    *int    `json:"team_id"`
}

type MilestoneCreate struct {
	ProjectID int    `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Date      Date   `json:"date" binding:"required"`
	Completed bool   `json:"completed"`
}

type MilestoneUpdate struct {
	Title     *string `json:"title"`
	Date      *Date   `json:"date"`
	Completed *bool   `json:"completed"`
}

type APIKeyCreate struct {
	UserID *int   `json:"user_id"`
	Name   string `json:"name" binding:"required"`
}

type AssignTeamRequest struct {
	MemberIDs []int `json:"member_ids" binding:"required"`
}

// Stats reports aggregate counts. TimeSpent and Productivity are fixed at
// zero: the source never computed them and inventing a formula is out of
// scope.
type Stats struct {
	ActiveProjects    int64 `json:"active_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	PendingTasks      int64 `json:"pending_tasks"`
	CompletedTasks    int64 `json:"completed_tasks"`
	TimeSpent         int64 `json:"time_spent"`
	Productivity      int64 `json:"productivity"`
}
