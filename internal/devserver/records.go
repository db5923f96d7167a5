package devserver

import "time"

type userRecord struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	UserType     string   `json:"user_type"`
	Location     string   `json:"location,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Available    bool     `json:"available"`
	PasswordHash []byte   `json:"-"`
}

func (u userRecord) public() userRecord {
	u.PasswordHash = nil
	u.Skills = append([]string(nil), u.Skills...)
	return u
}

type jobRecord struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"client_id"`
	WorkerID       int64     `json:"worker_id,omitempty"`
	Applicants     []int64   `json:"applicants,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	JobType        string    `json:"job_type"`
	Location       string    `json:"location"`
	Budget         float64   `json:"budget"`
	EstimatedHours float64   `json:"estimated_hours"`
	Status         string    `json:"status"`
	ScheduledDate  string    `json:"scheduled_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (j jobRecord) copy() jobRecord {
	j.Applicants = append([]int64(nil), j.Applicants...)
	return j
}

func (j jobRecord) hasApplicant(workerID int64) bool {
	for _, id := range j.Applicants {
		if id == workerID {
			return true
		}
	}
	return false
}

type paymentRecord struct {
	ID        string    `json:"id"`
	JobID     int64     `json:"job_id"`
	PayerID   int64     `json:"payer_id"`
	PayeeID   int64     `json:"payee_id,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationRecord struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type jobDraft struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	JobType        string  `json:"job_type"`
	Location       string  `json:"location"`
	Budget         float64 `json:"budget"`
	EstimatedHours float64 `json:"estimated_hours"`
	ScheduledDate  string  `json:"scheduled_date"`
}

func (d jobDraft) problem() string {
	switch {
	case d.Title == "", d.Description == "", d.JobType == "", d.Location == "":
		return "title, description, job_type and location are required"
	case d.Budget <= 0:
		return "budget must be positive"
	case d.EstimatedHours <= 0:
		return "estimated_hours must be positive"
	}
	return ""
}
