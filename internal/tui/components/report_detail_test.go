package components

import (
	"context"
	"errors"
	"testing"

	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/progress"
	"github.com/edulog/etugon/internal/sample"
	"github.com/edulog/etugon/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	err   error
	calls int
}

func (f *fakeSyncer) UpdateStatus(_ context.Context, _ int, _ model.Status) error {
	f.calls++
	return f.err
}

func newDetail(t *testing.T, id int, syncer progress.Syncer, canUpvote bool) (ReportDetailModel, *ledger.Ledger) {
	t.Helper()
	r, ok := sample.Find(id)
	require.True(t, ok)
	votes := ledger.New()
	tracker := progress.New(r, nil, progress.WithSyncer(syncer))
	return NewReportDetail(context.Background(), tracker, votes, canUpvote, themes.Default), votes
}

func TestReportDetail_CompleteSuccess(t *testing.T) {
	syncer := &fakeSyncer{}
	m, _ := newDetail(t, 1, syncer, false)
	assert.Contains(t, m.View(), "[c] Mark as completed")

	m, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)
	assert.True(t, m.Busy())

	_, second := m.Update(keyMsg("c"))
	assert.Nil(t, second, "no second request while busy")

	msg, ok := run(cmd).(CompletionResultMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 1, msg.ReportID)
	assert.Equal(t, model.StatusCompleted, msg.Snapshot.Status)
	for _, step := range msg.Snapshot.Steps {
		assert.Equal(t, model.StepCompleted, step.Status)
	}

	m, _ = m.Update(msg)
	assert.False(t, m.Busy())
	assert.Equal(t, "Report marked as completed.", m.Message())
	assert.Equal(t, 1, syncer.calls)

	view := m.View()
	assert.Contains(t, view, "Completed")
	assert.NotContains(t, view, "[c] Mark as completed")

	_, cmd = m.Update(keyMsg("c"))
	assert.Nil(t, cmd)
}

func TestReportDetail_CompleteSyncFailure(t *testing.T) {
	syncer := &fakeSyncer{err: &common.RetryableError{Err: &api.APIError{StatusCode: 500, Detail: "Database unavailable"}}}
	m, _ := newDetail(t, 4, syncer, true)

	m, cmd := m.Update(keyMsg("c"))
	msg := run(cmd).(CompletionResultMsg)
	require.Error(t, msg.Err)
	assert.Equal(t, model.StatusInProgress, msg.Snapshot.Status)

	m, _ = m.Update(msg)
	assert.Equal(t, "Database unavailable", m.Message())
	assert.Contains(t, m.View(), "[c] Mark as completed", "completion can be retried")
}

func TestReportDetail_NetworkFailure(t *testing.T) {
	syncer := &fakeSyncer{err: common.ErrNetwork}
	m, _ := newDetail(t, 1, syncer, false)

	m, cmd := m.Update(keyMsg("c"))
	m, _ = m.Update(run(cmd))
	assert.Equal(t, api.NetworkMessage, m.Message())
}

func TestReportDetail_NotInProgress(t *testing.T) {
	m, _ := newDetail(t, 3, &fakeSyncer{}, true)
	_, cmd := m.Update(keyMsg("c"))
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "[c] Mark as completed")
}

func TestReportDetail_IgnoresOtherReports(t *testing.T) {
	m, _ := newDetail(t, 1, &fakeSyncer{}, false)
	m, _ = m.Update(CompletionResultMsg{ReportID: 2, Err: errors.New("boom")})
	assert.Empty(t, m.Message())
}

func TestReportDetail_Upvote(t *testing.T) {
	m, votes := newDetail(t, 4, nil, true)

	_, cmd := m.Update(keyMsg("u"))
	msg, ok := run(cmd).(UpvoteToggledMsg)
	require.True(t, ok)
	assert.Equal(t, UpvoteToggledMsg{ReportID: 4, Upvoted: true}, msg)
	assert.Contains(t, m.View(), "▲ 9")
	assert.True(t, votes.Has(4))

	own, ownVotes := newDetail(t, 1, nil, false)
	_, cmd = own.Update(keyMsg("u"))
	assert.Nil(t, cmd)
	assert.Zero(t, ownVotes.Len())
}

func TestReportDetail_BackAndView(t *testing.T) {
	m, _ := newDetail(t, 3, nil, true)

	_, cmd := m.Update(keyMsg("esc"))
	assert.IsType(t, BackToListMsg{}, run(cmd))

	view := m.View()
	assert.Contains(t, view, "Overflowing Garbage")
	assert.Contains(t, view, "Progress Timeline")
	assert.Contains(t, view, "Awaiting assignment")
	assert.Contains(t, view, "Reported by: Carlos Reyes")
}
