package cmd

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	NotificationsAddress     string
	NotificationRetryCount   int
	NotificationRetryTimeout int
	CompletionSweepSchedule  string
}
