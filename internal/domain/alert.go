package domain

// Alert is a transient UI notification. At most one alert is live at a
// time; a new alert overwrites the current one rather than queuing.
type Alert struct {
	Message string
	Type    AlertType
}
