package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDataLoaded           EventType = "DataLoaded"
	EventError                EventType = "Error"
	EventSelectionChanged     EventType = "SelectionChanged"
	EventSelectionCleared     EventType = "SelectionCleared"
	EventPlaybackStatus       EventType = "PlaybackStatus"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventConfigChanged        EventType = "ConfigChanged"
	EventDataRefreshRequested EventType = "DataRefreshRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DataLoadedEvent is emitted when a new category sequence has been read
type DataLoadedEvent struct {
	Sequence Sequence
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SelectionChangedEvent is emitted when the host highlight set changes
type SelectionChangedEvent struct {
	IDs []ItemID
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when all highlighting is removed
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// PlaybackStatusEvent is emitted when the controller changes status
type PlaybackStatusEvent struct {
	Status   Status
	Position int
}

func (e PlaybackStatusEvent) Type() EventType { return EventPlaybackStatus }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the playback configuration was edited
// from the UI and needs to be persisted and applied
type ConfigChangedEvent struct {
	Playback PlaybackConfig
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// DataRefreshRequestedEvent asks the dataset layer to re-read its source
type DataRefreshRequestedEvent struct {
	Path string
}

func (e DataRefreshRequestedEvent) Type() EventType { return EventDataRefreshRequested }
