package model

import "time"

type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomeOK     Outcome = "OK"
	OutcomeNOK    Outcome = "NOK"
	OutcomePP     Outcome = "PP"
	OutcomeCancel Outcome = "CANCEL"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeNone, OutcomeOK, OutcomeNOK, OutcomePP, OutcomeCancel:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskDraft     TaskStatus = "DRAFT"
	TaskCompleted TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	return s == TaskDraft || s == TaskCompleted
}

type TaskType string

const (
	TaskRepair          TaskType = "Repair"
	TaskInstall0        TaskType = "Install 0"
	TaskInstall1        TaskType = "Install 1"
	TaskInstall2        TaskType = "Install 2"
	TaskInstall3        TaskType = "Install 3"
	TaskProjUnhappy     TaskType = "Proj unhappy"
	TaskProjInhomeLarge TaskType = "Proj inhome large"
	TaskDIYSupport      TaskType = "DIY support"
)

var TaskTypes = []TaskType{
	TaskRepair, TaskInstall0, TaskInstall1, TaskInstall2,
	TaskInstall3, TaskProjUnhappy, TaskProjInhomeLarge, TaskDIYSupport,
}

func (t TaskType) Valid() bool {
	for _, v := range TaskTypes {
		if v == t {
			return true
		}
	}
	return false
}

// HasInstallProducts reports whether tasks of this type record installed hardware.
func (t TaskType) HasInstallProducts() bool {
	return t == TaskInstall1 || t == TaskInstall2 || t == TaskInstall3
}

type ProductCategory string

const (
	CategoryModem ProductCategory = "MODEM"
	CategoryNIU   ProductCategory = "NIU"
	CategoryTVBox ProductCategory = "TV BOX"
)

type InstallProduct struct {
	Category ProductCategory `json:"category" validate:"required"`
	Model    string          `json:"model" validate:"required"`
}

type OtherProduct struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

type Task struct {
	ID              string           `json:"id"`
	TechnicianID    string           `json:"technician_id"`
	TechnicianName  string           `json:"technician_name"`
	Date            Date             `json:"date"`
	Type            TaskType         `json:"type"`
	CustomerNumber  string           `json:"customer_number"`
	Outcome         Outcome          `json:"outcome"`
	Status          TaskStatus       `json:"status"`
	InstallProducts []InstallProduct `json:"install_products"`
	OtherProducts   []OtherProduct   `json:"other_products"`
	Photos          []string         `json:"photos"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
