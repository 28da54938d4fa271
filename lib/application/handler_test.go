package applicationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
	applicationapimodels "solventek-backend/models/api/application"
	dbmodels "solventek-backend/models/db"
)

type fakeStore struct {
	created *dbmodels.Application
}

func (s *fakeStore) Create(rec dbmodels.Application) (string, error) {
	s.created = &rec
	return "a1", nil
}

func (s *fakeStore) GetByID(string) (*dbmodels.Application, error) { return nil, nil }

func (s *fakeStore) Update(string, map[string]interface{}) error { return nil }

func (s *fakeStore) ListCount(dbmodels.ApplicationFilter) (int64, error) { return 0, nil }

func (s *fakeStore) List(dbmodels.ApplicationFilter, int, int) ([]dbmodels.Application, error) {
	return nil, nil
}

func (s *fakeStore) ListAll(dbmodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (s *fakeStore) CreateDoc(dbmodels.ApplicationDoc) (string, error) { return "", nil }

func (s *fakeStore) ListDocs(string) ([]dbmodels.ApplicationDoc, error) { return nil, nil }

type fakeJobStore struct {
	job *dbmodels.Job
}

func (s fakeJobStore) Create(dbmodels.Job) (string, error) { return "", nil }

func (s fakeJobStore) GetByID(string) (*dbmodels.Job, error) { return s.job, nil }

func (s fakeJobStore) Update(string, map[string]interface{}) error { return nil }

func (s fakeJobStore) Delete(string) error { return nil }

func (s fakeJobStore) ListCount(dbmodels.JobFilter) (int64, error) { return 0, nil }

func (s fakeJobStore) List(dbmodels.JobFilter, int, int) ([]dbmodels.Job, error) { return nil, nil }

func (s fakeJobStore) ListAll(dbmodels.JobFilter) ([]dbmodels.Job, error) { return nil, nil }

type fakeOrgStore struct {
	org *dbmodels.Organization
}

func (s fakeOrgStore) Create(dbmodels.Organization) (string, error) { return "", nil }

func (s fakeOrgStore) GetByID(string) (*dbmodels.Organization, error) { return nil, nil }

func (s fakeOrgStore) FindByName(string) (*dbmodels.Organization, error) { return s.org, nil }

func (s fakeOrgStore) Update(string, map[string]interface{}) error { return nil }

func (s fakeOrgStore) ListCount(dbmodels.OrganizationFilter) (int64, error) { return 0, nil }

func (s fakeOrgStore) List(dbmodels.OrganizationFilter, int, int) ([]dbmodels.Organization, error) {
	return nil, nil
}

func (s fakeOrgStore) FindSolventek() (*dbmodels.Organization, error) { return nil, nil }

type fakeUserStore struct{}

func (s fakeUserStore) Create(dbmodels.User) (string, error) { return "", nil }

func (s fakeUserStore) GetByID(string) (*dbmodels.User, error) { return nil, nil }

func (s fakeUserStore) FindByEmail(string) (*dbmodels.User, error) { return nil, nil }

func (s fakeUserStore) ListByRoles([]models.UserRole) ([]dbmodels.User, error) { return nil, nil }

func (s fakeUserStore) ListByOrganization(string) ([]dbmodels.User, error) { return nil, nil }

type fakeTimeline struct{}

func (fakeTimeline) List(models.NotificationCategory, string, applicationapimodels.TimelineFilter) ([]applicationapimodels.TimelineView, int64, error) {
	return nil, 0, nil
}

func (fakeTimeline) Save(models.NotificationCategory, string, string, dbmodels.ActionType, dbmodels.TimelineChanges, []string) {
}

func (fakeTimeline) SaveNote(models.NotificationCategory, string, string, string) error { return nil }

func newTestHandler(store *fakeStore, job *dbmodels.Job, org *dbmodels.Organization) impl {
	return impl{
		store:     store,
		jobStore:  fakeJobStore{job: job},
		orgStore:  fakeOrgStore{org: org},
		userStore: fakeUserStore{},
		timeline:  fakeTimeline{},
	}
}

func TestCreate(t *testing.T) {
	data := applicationapimodels.ApplicationData{
		JobID:     "j1",
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan@example.com",
	}
	publishedJob := &dbmodels.Job{Title: "Go разработчик", Status: models.JobStatusPublished}

	t.Run(`новая подача создается в статусе APPLIED`, func(t *testing.T) {
		actor := models.Actor{UserID: "u1", Role: models.UserRoleTA, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
		store := &fakeStore{}
		h := newTestHandler(store, publishedJob, nil)

		id, hMsg, err := h.Create(actor, data)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "a1", id)
		require.NotNil(t, store.created)
		require.Equal(t, models.ApplicationStatusApplied, store.created.Status)
		require.Equal(t, "u1", store.created.AuthorID)
		require.Nil(t, store.created.OrganizationID)
	})

	t.Run(`подача вендора привязывается к его организации`, func(t *testing.T) {
		actor := models.Actor{UserID: "v1", Role: models.UserRoleVendor, OrgName: "Acme", OrgType: models.OrgTypeVendor}
		store := &fakeStore{}
		h := newTestHandler(store, publishedJob, &dbmodels.Organization{BaseModel: dbmodels.BaseModel{ID: "o1"}, Name: "Acme"})

		_, hMsg, err := h.Create(actor, data)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.NotNil(t, store.created)
		require.Equal(t, models.ApplicationStatusApplied, store.created.Status)
		require.NotNil(t, store.created.OrganizationID)
		require.Equal(t, "o1", *store.created.OrganizationID)
	})

	t.Run(`подача на неопубликованную позицию отклоняется`, func(t *testing.T) {
		actor := models.Actor{UserID: "u1", Role: models.UserRoleTA, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
		store := &fakeStore{}
		h := newTestHandler(store, &dbmodels.Job{Title: "Go разработчик", Status: models.JobStatusDraft}, nil)

		id, hMsg, err := h.Create(actor, data)
		require.NoError(t, err)
		require.Equal(t, "позиция не опубликована", hMsg)
		require.Empty(t, id)
		require.Nil(t, store.created)
	})

	t.Run(`подача на несуществующую позицию отклоняется`, func(t *testing.T) {
		actor := models.Actor{UserID: "u1", Role: models.UserRoleTA, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
		store := &fakeStore{}
		h := newTestHandler(store, nil, nil)

		id, hMsg, err := h.Create(actor, data)
		require.NoError(t, err)
		require.Equal(t, "позиция не найдена", hMsg)
		require.Empty(t, id)
		require.Nil(t, store.created)
	})
}
