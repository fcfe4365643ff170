package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/usecase/interfaces"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// SendgridNotifier emails the frozen billing numbers to the configured
// billing contact. The downstream G702/G703 document rendering is an
// external collaborator; this notice carries the numeric content only.
//
// Env vars:
//   - SENDGRID_API_KEY (required to construct)
//   - BILLING_NOTICE_EMAIL (recipient, required to construct)
//   - BILLING_NOTICE_FROM (default billing@gcpanel.local)
type SendgridNotifier struct {
	key  string
	from *sgmail.Email
	to   *sgmail.Email
}

var _ interfaces.IBillingNotifier = (*SendgridNotifier)(nil)

func NewSendgridNotifier() (*SendgridNotifier, error) {
	key := strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	if key == "" {
		return nil, errors.New("SENDGRID_API_KEY not set")
	}
	to := strings.TrimSpace(os.Getenv("BILLING_NOTICE_EMAIL"))
	if to == "" {
		return nil, errors.New("BILLING_NOTICE_EMAIL not set")
	}
	from := strings.TrimSpace(os.Getenv("BILLING_NOTICE_FROM"))
	if from == "" {
		from = "billing@gcpanel.local"
	}
	return &SendgridNotifier{
		key:  key,
		from: sgmail.NewEmail("gcPanel Billing", from),
		to:   sgmail.NewEmail("", to),
	}, nil
}

func (n *SendgridNotifier) SendSnapshotNotice(ctx context.Context, snap entities.BillingSnapshot) error {
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("[gcPanel] Billing application %s - project %s", snap.PeriodID, snap.ProjectID)
	p.AddTos(n.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", renderNoticeBody(snap)))

	req := sendgrid.GetRequest(n.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func renderNoticeBody(snap entities.BillingSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Billing period %s frozen at %s (application #%d).\n\n",
		snap.PeriodID, snap.AsOf.Format("2006-01-02"), snap.Sequence)
	fmt.Fprintf(&b, "Total effective budget: %s\n", snap.TotalEffectiveBudget.StringFixed(2))
	fmt.Fprintf(&b, "Total actuals to date:  %s\n", snap.TotalActual.StringFixed(2))
	fmt.Fprintf(&b, "Billed this period:     %s\n", snap.TotalBilled.StringFixed(2))
	fmt.Fprintf(&b, "Retainage (%s%%):        %s\n", snap.RetainagePct.String(), snap.RetainageAmount.StringFixed(2))
	fmt.Fprintf(&b, "Payment due:            %s\n\n", snap.PaymentDue.StringFixed(2))
	for _, ln := range snap.Lines {
		fmt.Fprintf(&b, "%-40s budget %s, complete %s%%, billed %s\n",
			ln.Description, ln.EffectiveBudget.StringFixed(2), ln.PercentComplete.StringFixed(1), ln.BilledThisPeriod.StringFixed(2))
	}
	return b.String()
}
