package intake

import (
	"errors"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
)

type recordingNotifier struct {
	forwarded chan domain.Lead
	err       error
}

func (n *recordingNotifier) Forward(lead domain.Lead) error {
	n.forwarded <- lead
	return n.err
}

func newTestPipeline(t *testing.T, n *recordingNotifier) (*Pipeline, *store.Store) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	st := store.NewStore(EventBus.New(), node)
	p, err := NewPipeline(st, n, 2)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	t.Cleanup(p.Release)
	return p, st
}

func waitForward(t *testing.T, n *recordingNotifier) domain.Lead {
	t.Helper()
	select {
	case l := <-n.forwarded:
		return l
	case <-time.After(2 * time.Second):
		t.Fatal("forward was not attempted")
		return domain.Lead{}
	}
}

func TestSubmitRecordsLeadAndForwards(t *testing.T) {
	n := &recordingNotifier{forwarded: make(chan domain.Lead, 1)}
	p, st := newTestPipeline(t, n)

	lead, verr := p.Submit(contactBody(nil))
	if verr != nil {
		t.Fatalf("submit: %v", verr)
	}
	if lead.ID == "" || lead.Status != domain.LeadStatusNew {
		t.Fatalf("unexpected lead: %+v", lead)
	}

	if got := st.Leads(); len(got) != 1 || got[0].ID != lead.ID {
		t.Fatalf("lead not recorded: %v", got)
	}

	forwarded := waitForward(t, n)
	if forwarded.ID != lead.ID {
		t.Fatalf("forwarded a different lead: %s", forwarded.ID)
	}
}

func TestSubmitValidationFailureRecordsNothing(t *testing.T) {
	n := &recordingNotifier{forwarded: make(chan domain.Lead, 1)}
	p, st := newTestPipeline(t, n)

	_, verr := p.Submit(enquiryBody(map[string]interface{}{"projectId": ""}))
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(st.Leads()) != 0 {
		t.Fatal("no lead may be recorded on validation failure")
	}

	select {
	case <-n.forwarded:
		t.Fatal("nothing should be forwarded on validation failure")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestForwardFailureKeepsLead(t *testing.T) {
	n := &recordingNotifier{
		forwarded: make(chan domain.Lead, 1),
		err:       errors.New("channel down"),
	}
	p, st := newTestPipeline(t, n)

	lead, verr := p.Submit(contactBody(nil))
	if verr != nil {
		t.Fatalf("submit: %v", verr)
	}
	waitForward(t, n)

	if got := st.Leads(); len(got) != 1 || got[0].ID != lead.ID {
		t.Fatal("forward failure must not roll back the lead")
	}
}
