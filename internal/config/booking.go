package config

type BookingConfig struct {
	OperatorEmail   string `yaml:"operator_email"`
	StartHour       int    `yaml:"start_hour"`
	EndHour         int    `yaml:"end_hour"`
	IntervalMinutes int    `yaml:"interval_minutes"`
	WindowDays      int    `yaml:"window_days"`
}

// loadBookingConfig supplies the showroom defaults used when a vehicle has no
// availability window of its own in the catalog.
func loadBookingConfig() *BookingConfig {
	return &BookingConfig{
		OperatorEmail:   getEnv("BOOKING_OPERATOR_EMAIL", "sales@voltdrive.example"),
		StartHour:       getEnvAsInt("BOOKING_START_HOUR", 9),
		EndHour:         getEnvAsInt("BOOKING_END_HOUR", 18),
		IntervalMinutes: getEnvAsInt("BOOKING_INTERVAL_MINUTES", 60),
		WindowDays:      getEnvAsInt("BOOKING_WINDOW_DAYS", 14),
	}
}
