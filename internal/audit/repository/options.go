package repository

type CreateLogOptions struct {
	ID         string
	ReportName string
	PatientID  string
	ActorID    string
	ActorRole  string
	Action     string
	Reason     string
}

type ListLogsOptions struct {
	PatientID string
	Action    string
	Limit     int64
	Offset    int64
}
