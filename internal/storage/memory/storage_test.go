package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardbank/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:              id,
		Phase:           model.PhaseMenu,
		NumPlayers:      2,
		StartingBalance: 1500,
		Slots: []model.Slot{
			{Identity: model.Identity{0x04, 0xA2, 0x3F, 0x10}, Balance: 1500},
			{Identity: model.Identity{0x11, 0x9C, 0x02, 0x20}, Balance: 1500},
		},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	err := s.storage.SaveSession(s.ctx, newSession("S1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "S1")
	s.Require().NoError(err)
	s.Equal(model.SessionID("S1"), retrieved.ID)
	s.Equal(int64(3000), retrieved.TotalMoney())
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestLatestSession() {
	_, err := s.storage.GetLatestSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)

	_ = s.storage.SaveSession(s.ctx, newSession("S1"))
	_ = s.storage.SaveSession(s.ctx, newSession("S2"))

	latest, err := s.storage.GetLatestSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionID("S2"), latest.ID)
}

func (s *StorageSuite) TestSaveIsolatesSnapshot() {
	session := newSession("S1")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Slots[0].Balance = 0
	retrieved, _ := s.storage.GetSession(s.ctx, "S1")
	s.Equal(int64(1500), retrieved.Slots[0].Balance)

	retrieved.Slots[1].Balance = 0
	again, _ := s.storage.GetSession(s.ctx, "S1")
	s.Equal(int64(1500), again.Slots[1].Balance)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("S1"))

	err := s.storage.DeleteSession(s.ctx, "S1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "S1")
	s.ErrorIs(err, model.ErrSessionNotFound)
	_, err = s.storage.GetLatestSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}
