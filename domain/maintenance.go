package domain

import "time"

type MaintenanceType string

const (
	MaintenanceRoutine     MaintenanceType = "ROUTINE"
	MaintenanceRepair      MaintenanceType = "REPAIR"
	MaintenanceCalibration MaintenanceType = "CALIBRATION"
	MaintenanceInspection  MaintenanceType = "INSPECTION"
	MaintenanceEmergency   MaintenanceType = "EMERGENCY"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceRoutine, MaintenanceRepair, MaintenanceCalibration, MaintenanceInspection, MaintenanceEmergency:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

type MaintenanceRecord struct {
	ID                int64             `db:"id" json:"id"`
	EquipmentID       int64             `db:"equipment_id" json:"equipment_id"`
	TechnicianID      *int64            `db:"technician_id" json:"technician_id,omitempty"`
	MaintenanceDate   Date              `db:"maintenance_date" json:"maintenance_date"`
	Type              MaintenanceType   `db:"type" json:"type"`
	Description       string            `db:"description" json:"description"`
	Cost              *float64          `db:"cost" json:"cost,omitempty"`
	PerformedBy       string            `db:"performed_by" json:"performed_by"`
	NextScheduledDate *Date             `db:"next_scheduled_date" json:"next_scheduled_date,omitempty"`
	Status            MaintenanceStatus `db:"status" json:"status"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
}
