package directory

import (
	"fmt"
	"strings"

	"phonemechanic-system/internal/pos"
)

// minMatchLength guards against false positives on very short prefixes.
const minMatchLength = 3

// Matcher looks up directory customers by partial phone number and proposes
// autofill values for a draft customer.
type Matcher struct {
	directory *Directory
}

func NewMatcher(directory *Directory) *Matcher {
	return &Matcher{directory: directory}
}

type MatchResult struct {
	Customer pos.Customer
}

// Match scans the directory in stored order and returns the first customer
// whose phone number contains partialPhone as a substring. First match
// wins; there is no scoring or disambiguation. Inputs shorter than three
// characters never match.
func (m *Matcher) Match(partialPhone string) (MatchResult, bool) {
	if len(partialPhone) < minMatchLength {
		return MatchResult{}, false
	}
	for _, c := range m.directory.customers {
		if strings.Contains(c.Phone, partialPhone) {
			return MatchResult{Customer: c}, true
		}
	}
	return MatchResult{}, false
}

// Autofill copies the matched customer into the draft. The name is only
// overwritten when the draft name is empty or a prefix of the matched name,
// so a name the operator is actively typing that diverges from the match is
// never clobbered. Email, membership and device model are overwritten on
// every match.
func (r MatchResult) Autofill(draft *pos.Customer) {
	if draft.Name == "" || strings.HasPrefix(r.Customer.Name, draft.Name) {
		draft.Name = r.Customer.Name
	}
	draft.Email = r.Customer.Email
	draft.IsMember = r.Customer.IsMember
	draft.DeviceModel = r.Customer.DeviceModel
}

// VisitSummary is advisory display data for the operator; it is not part of
// any Order. Empty when the matched customer has no prior visits.
func (r MatchResult) VisitSummary() string {
	if r.Customer.VisitCount < 1 {
		return ""
	}
	return fmt.Sprintf("Visits: %d | Total: $%s", r.Customer.VisitCount, r.Customer.TotalSpent.String())
}
