package mail

type ScheduleEmailData struct {
	ClientName string
	Rows       []ScheduleRow
	Total      string
}

type ScheduleRow struct {
	Number  int
	DueDate string
	Amount  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	dialer messageSender
}
