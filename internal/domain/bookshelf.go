package domain

import "time"

// BookshelfSettings holds the smart shelf's device configuration. Fixed,
// typed fields rather than an open settings map.
type BookshelfSettings struct {
	LEDColor        string `json:"led_color"`
	LEDBrightness   int32  `json:"led_brightness"`
	SensorPollSecs  int32  `json:"sensor_poll_secs"`
	AlertOnRemoval  bool   `json:"alert_on_removal"`
	FirmwareVersion string `json:"firmware_version"`
}

// Bookshelf is one simulated smart shelf in the physical archive.
type Bookshelf struct {
	ID        int32             `json:"id"`
	Name      string            `json:"name"`
	Location  string            `json:"location"`
	Capacity  int32             `json:"capacity"`
	Settings  BookshelfSettings `json:"settings"`
	CreatedOn time.Time         `json:"created_on"`
}

// ShelfSlot places one thesis on one shelf position.
type ShelfSlot struct {
	ID          int32  `json:"id"`
	BookshelfID int32  `json:"bookshelf_id"`
	ThesisID    int32  `json:"thesis_id"`
	Position    int32  `json:"position"`
	RFIDTag     string `json:"rfid_tag"`
}
