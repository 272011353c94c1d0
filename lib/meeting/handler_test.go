package meeting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	employeestore "hrms-backend/lib/employee/store"
	"hrms-backend/lib/overlap"
	"hrms-backend/models"
	meetingapimodels "hrms-backend/models/api/meeting"
	dbmodels "hrms-backend/models/db"
)

type memMeetingStore struct {
	seq  int
	recs map[string]*dbmodels.Meeting
}

func newMemMeetingStore() *memMeetingStore {
	return &memMeetingStore{recs: map[string]*dbmodels.Meeting{}}
}

func (m *memMeetingStore) Create(rec dbmodels.Meeting) (string, error) {
	m.seq++
	rec.ID = fmt.Sprintf("meeting-%v", m.seq)
	m.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (m *memMeetingStore) GetByID(id string) (*dbmodels.Meeting, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (m *memMeetingStore) ListForParticipant(employeeID string) ([]dbmodels.Meeting, error) {
	list := []dbmodels.Meeting{}
	for _, rec := range m.recs {
		if rec.Status == models.MeetingCancelled {
			continue
		}
		if isParticipant(*rec, employeeID) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memMeetingStore) FindConflicts(date string, participants []string, startMinutes, endMinutes int) ([]dbmodels.Meeting, error) {
	list := []dbmodels.Meeting{}
	for _, rec := range m.recs {
		if rec.Date != date || rec.Status == models.MeetingCancelled {
			continue
		}
		if !overlap.MinutesOverlap(rec.StartMinutes, rec.EndMinutes, startMinutes, endMinutes) {
			continue
		}
		if !hasCommonParticipant(rec.Participants, participants) {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (m *memMeetingStore) SetCancelled(id, organizerID string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.OrganizerID != organizerID || rec.Status != models.MeetingScheduled {
		return false, nil
	}
	rec.Status = models.MeetingCancelled
	return true, nil
}

// fakeEmployeeDir считает существующими всех, кроме перечисленных в missing
type fakeEmployeeDir struct {
	missing map[string]bool
}

func (f fakeEmployeeDir) Create(rec dbmodels.Employee) (string, error) { return "", nil }

func (f fakeEmployeeDir) GetByID(id string) (*dbmodels.Employee, error) { return nil, nil }

func (f fakeEmployeeDir) FindByEmployeeID(employeeID string) (*dbmodels.Employee, error) {
	if f.missing[employeeID] {
		return nil, nil
	}
	return &dbmodels.Employee{EmployeeID: employeeID}, nil
}

func (f fakeEmployeeDir) FindByEmail(email string) (*dbmodels.Employee, error) { return nil, nil }

func (f fakeEmployeeDir) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeEmployeeDir) Delete(id string) error { return nil }

func (f fakeEmployeeDir) List(filter employeestore.ListFilter) ([]dbmodels.Employee, int64, error) {
	return nil, 0, nil
}

func hasCommonParticipant(a, b []string) bool {
	for _, left := range a {
		for _, right := range b {
			if left == right {
				return true
			}
		}
	}
	return false
}

func newMeetingHandler() (*impl, *memMeetingStore) {
	store := newMemMeetingStore()
	return &impl{store: store, employeeStore: fakeEmployeeDir{}}, store
}

func createData(start, end string, participants ...string) meetingapimodels.CreateData {
	return meetingapimodels.CreateData{
		Title:        "планерка",
		Date:         "2026-09-10",
		StartTime:    start,
		EndTime:      end,
		Participants: participants,
	}
}

func TestCreateMeeting(t *testing.T) {
	handler, _ := newMeetingHandler()

	view, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)
	require.Equal(t, models.MeetingScheduled, view.Status)
	require.Equal(t, "09:00", view.StartTime)
	require.Equal(t, "10:00", view.EndTime)
	// организатор всегда среди участников
	require.Contains(t, view.Participants, "EMP001")
	require.Contains(t, view.Participants, "EMP002")
}

func TestCreateUnknownParticipant(t *testing.T) {
	store := newMemMeetingStore()
	handler := &impl{store: store, employeeStore: fakeEmployeeDir{missing: map[string]bool{"EMP404": true}}}

	_, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP404"))
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestCreateConflictSharedParticipant(t *testing.T) {
	handler, _ := newMeetingHandler()

	_, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)

	// общий участник и пересечение по времени
	_, err = handler.Create("EMP003", createData("09:30", "10:30", "EMP002"))
	require.Error(t, err)
	require.True(t, models.IsConflictError(err))

	// без общих участников конфликта нет
	_, err = handler.Create("EMP004", createData("09:30", "10:30", "EMP005"))
	require.NoError(t, err)
}

func TestCreateBackToBackAllowed(t *testing.T) {
	handler, _ := newMeetingHandler()

	_, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)

	// встречи встык не конфликтуют
	_, err = handler.Create("EMP001", createData("10:00", "11:00", "EMP002"))
	require.NoError(t, err)
}

func TestCreateIgnoresCancelled(t *testing.T) {
	handler, _ := newMeetingHandler()

	view, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)
	_, err = handler.Cancel(view.ID, "EMP001")
	require.NoError(t, err)

	_, err = handler.Create("EMP003", createData("09:30", "10:30", "EMP002"))
	require.NoError(t, err)
}

func TestListMineSkipsCancelled(t *testing.T) {
	handler, _ := newMeetingHandler()

	first, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)
	second, err := handler.Create("EMP001", createData("11:00", "12:00", "EMP002"))
	require.NoError(t, err)

	_, err = handler.Cancel(first.ID, "EMP001")
	require.NoError(t, err)

	list, err := handler.ListMine("EMP002")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, second.ID, list[0].ID)
}

func TestCancelOrganizerOnly(t *testing.T) {
	handler, _ := newMeetingHandler()

	view, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)

	_, err = handler.Cancel(view.ID, "EMP002")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))

	cancelled, err := handler.Cancel(view.ID, "EMP001")
	require.NoError(t, err)
	require.Equal(t, models.MeetingCancelled, cancelled.Status)

	_, err = handler.Cancel(view.ID, "EMP001")
	require.Error(t, err)
	require.True(t, models.IsStateError(err))
}

func TestGetOnlyForParticipants(t *testing.T) {
	handler, _ := newMeetingHandler()

	view, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)

	_, err = handler.Get(view.ID, "EMP002")
	require.NoError(t, err)

	_, err = handler.Get(view.ID, "EMP009")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
}

func TestCheckAvailability(t *testing.T) {
	handler, _ := newMeetingHandler()

	_, err := handler.Create("EMP001", createData("09:00", "10:00", "EMP002"))
	require.NoError(t, err)

	view, err := handler.CheckAvailability(meetingapimodels.AvailabilityData{
		Date:         "2026-09-10",
		StartTime:    "09:30",
		EndTime:      "10:30",
		Participants: []string{"EMP002"},
	})
	require.NoError(t, err)
	require.False(t, view.Available)
	require.Len(t, view.Conflicts, 1)

	view, err = handler.CheckAvailability(meetingapimodels.AvailabilityData{
		Date:         "2026-09-10",
		StartTime:    "10:00",
		EndTime:      "11:00",
		Participants: []string{"EMP002"},
	})
	require.NoError(t, err)
	require.True(t, view.Available)
}
