package domain

// Event tracks.
const (
	TrackGeneral  = "GENERAL"
	TrackAbstract = "ABSTRACT"
)

// Event time slots. Online events need no venue attendance tracking.
const (
	SlotOnline  = "ONLINE"
	SlotOffline = "OFFLINE"
)

// CatalogEvent is a static catalog entry for one symposium event.
// swagger:model CatalogEvent
type CatalogEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Track string `json:"track"`
	Slot  string `json:"slot"`
}

// EventCatalog is the symposium's event lineup. The catalog is reference
// data fixed per edition; registrations refer to it by event id.
var EventCatalog = []CatalogEvent{
	{ID: "paper-presentation", Title: "Paper Presentation", Track: TrackAbstract, Slot: SlotOffline},
	{ID: "project-presentation", Title: "Project Presentation", Track: TrackAbstract, Slot: SlotOffline},
	{ID: "code-debugging", Title: "Code Debugging", Track: TrackGeneral, Slot: SlotOffline},
	{ID: "tech-quiz", Title: "Tech Quiz", Track: TrackGeneral, Slot: SlotOffline},
	{ID: "ui-ux-design", Title: "UI/UX Design Challenge", Track: TrackGeneral, Slot: SlotOnline},
	{ID: "treasure-hunt", Title: "Treasure Hunt", Track: TrackGeneral, Slot: SlotOffline},
	{ID: "e-sports", Title: "E-Sports Tournament", Track: TrackGeneral, Slot: SlotOnline},
	{ID: "poster-design", Title: "Poster Design", Track: TrackGeneral, Slot: SlotOnline},
}

var catalogByID = func() map[string]CatalogEvent {
	m := make(map[string]CatalogEvent, len(EventCatalog))
	for _, ev := range EventCatalog {
		m[ev.ID] = ev
	}
	return m
}()

// CatalogEventByID looks up a catalog entry by event id.
func CatalogEventByID(id string) (CatalogEvent, bool) {
	ev, ok := catalogByID[id]
	return ev, ok
}

// EventTitle resolves an event id to its display title, falling back to the
// raw id for unknown events.
func EventTitle(id string) string {
	if ev, ok := catalogByID[id]; ok {
		return ev.Title
	}
	return id
}

// AbstractEventIDs returns the ids of abstract-track events, in catalog order.
func AbstractEventIDs() []string {
	var ids []string
	for _, ev := range EventCatalog {
		if ev.Track == TrackAbstract {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}

// FallbackAttendanceStatus computes the initial attendance status for a
// fallback enrollment: online events need no venue attendance.
func FallbackAttendanceStatus(fallbackEventID string) string {
	if ev, ok := catalogByID[fallbackEventID]; ok && ev.Slot == SlotOnline {
		return AttendanceNotRequired
	}
	return AttendancePending
}
