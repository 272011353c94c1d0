package meetingapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/lib/overlap"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

const DateFormat = "2006-01-02"

type CreateData struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`       // YYYY-MM-DD
	StartTime    string   `json:"start_time"` // HH:MM
	EndTime      string   `json:"end_time"`   // HH:MM
	Participants []string `json:"participants"`
}

func (r CreateData) Validate() error {
	if r.Title == "" {
		return errors.New("не указана тема встречи")
	}
	if _, err := time.Parse(DateFormat, r.Date); err != nil {
		return errors.New("дата встречи должна быть в формате YYYY-MM-DD")
	}
	start, err := overlap.MinuteOfDay(r.StartTime)
	if err != nil {
		return errors.New("время начала должно быть в формате HH:MM")
	}
	end, err := overlap.MinuteOfDay(r.EndTime)
	if err != nil {
		return errors.New("время окончания должно быть в формате HH:MM")
	}
	if end <= start {
		return errors.New("время окончания должно быть позже времени начала")
	}
	return nil
}

func (r CreateData) GetMinutes() (int, int) {
	start, _ := overlap.MinuteOfDay(r.StartTime)
	end, _ := overlap.MinuteOfDay(r.EndTime)
	return start, end
}

type AvailabilityData struct {
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Participants []string `json:"participants"`
}

func (r AvailabilityData) Validate() error {
	return CreateData{
		Title:        "availability",
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Participants: r.Participants,
	}.Validate()
}

func (r AvailabilityData) GetMinutes() (int, int) {
	start, _ := overlap.MinuteOfDay(r.StartTime)
	end, _ := overlap.MinuteOfDay(r.EndTime)
	return start, end
}

type View struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Date         string               `json:"date"`
	StartTime    string               `json:"start_time"`
	EndTime      string               `json:"end_time"`
	OrganizerID  string               `json:"organizer_id"`
	Participants []string             `json:"participants"`
	Status       models.MeetingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func Convert(rec dbmodels.Meeting) View {
	return View{
		ID:           rec.ID,
		Title:        rec.Title,
		Date:         rec.Date,
		StartTime:    overlap.FormatMinutes(rec.StartMinutes),
		EndTime:      overlap.FormatMinutes(rec.EndMinutes),
		OrganizerID:  rec.OrganizerID,
		Participants: rec.Participants,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt,
	}
}

func ConvertList(recs []dbmodels.Meeting) []View {
	views := make([]View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, Convert(rec))
	}
	return views
}

type AvailabilityView struct {
	Available bool   `json:"available"`
	Conflicts []View `json:"conflicts,omitempty"`
}
