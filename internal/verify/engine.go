package verify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"supportbot/internal/affiliates"
)

// Config carries the flow tunables and the links embedded in prompts.
type Config struct {
	MinAccountAgeDays    int
	MinDepositDerivVIP   float64
	MinDepositMentorship float64
	MinDepositCurrencies float64
	AffiliateLink        string
	TaggingGuideURL      string
	AdminContactURL      string
	OctaSignupURL        string
	VantageSignupURL     string
}

func (c Config) signupURL(flow Flow) string {
	switch flow {
	case FlowCurrenciesOcta:
		return c.OctaSignupURL
	case FlowCurrenciesVantage:
		return c.VantageSignupURL
	}
	return ""
}

// TicketCreator materializes a completed verification into a persisted
// ticket. Implemented by the ticket package.
type TicketCreator interface {
	Create(ctx context.Context, userID int64, displayName, category, description string) (string, error)
}

// Engine drives users through the verification flows. All transitions are
// synchronous; side effects are confined to session mutation, at most one
// reply, and ticket materialization on terminal success.
type Engine struct {
	registry *affiliates.Registry
	store    SessionStore
	tickets  TicketCreator
	cfg      Config
	logger   *zap.Logger
}

// NewEngine creates a verification engine.
func NewEngine(registry *affiliates.Registry, store SessionStore, tickets TicketCreator, cfg Config, logger *zap.Logger) *Engine {
	return &Engine{
		registry: registry,
		store:    store,
		tickets:  tickets,
		cfg:      cfg,
		logger:   logger,
	}
}

// HasSession reports whether the user has an open verification session.
func (e *Engine) HasSession(userID int64) bool {
	e.store.Acquire(userID)
	defer e.store.Release(userID)
	_, ok := e.store.Get(userID)
	return ok
}

// Cancel drops the user's session, if any. Used when the user restarts
// from the main menu.
func (e *Engine) Cancel(userID int64) {
	e.store.Acquire(userID)
	defer e.store.Release(userID)
	e.store.Delete(userID)
}

// StartFlow opens a fresh session for the given flow, replacing any
// session the user already had, and returns the entry prompt.
func (e *Engine) StartFlow(user User, flow Flow) Reply {
	e.store.Acquire(user.ID)
	defer e.store.Release(user.ID)

	sess := &Session{Flow: flow}

	var text string
	switch flow {
	case FlowDerivVIP:
		sess.Step = StepAwaitAccountConfirm
		text = fmt.Sprintf(
			"📈 Deriv VIP (Synthetic) Registration\n\n"+
				"Requirements:\n"+
				"• Account opened via our link: %s\n"+
				"• Account older than %d days\n"+
				"• Minimum deposit: $%.0f USD\n\n"+
				"Do you already have a Deriv account opened through our link? (yes/no)",
			e.cfg.AffiliateLink, e.cfg.MinAccountAgeDays, e.cfg.MinDepositDerivVIP)
	case FlowMentorship:
		sess.Step = StepAwaitCodeOrDone
		text = fmt.Sprintf(
			"🎓 Free Mentorship Program\n\n"+
				"Requirements:\n"+
				"• Deriv account opened via our link: %s\n"+
				"• Basic understanding of trading concepts\n"+
				"• Commitment to learning\n\n"+
				"Please send your Deriv CR number, or 'done' to continue without it:",
			e.cfg.AffiliateLink)
	case FlowCurrenciesOcta, FlowCurrenciesVantage:
		sess.Step = StepAwaitProof
		text = fmt.Sprintf(
			"📊 %s Premium Registration\n\n"+
				"Step 1: Open an account %s\n"+
				"Step 2: Deposit at least $%.0f USD, then upload a screenshot "+
				"of the deposit. The screenshot should clearly show the amount "+
				"and your account details.",
			flow.Broker(), e.cfg.signupURL(flow), e.cfg.MinDepositCurrencies)
	}

	e.store.Put(user.ID, sess)
	e.logger.Info("verification flow started",
		zap.Int64("user_id", user.ID),
		zap.String("category", flow.Category()),
		zap.String("step", sess.Step.String()),
	)
	return Reply{Text: text}
}

// Handle routes an inbound event to the user's open session. The second
// return value is false when the user has no session, in which case the
// input was not consumed and the caller should fall back to its own
// handling.
func (e *Engine) Handle(ctx context.Context, user User, in Input) (Reply, bool) {
	e.store.Acquire(user.ID)
	defer e.store.Release(user.ID)

	sess, ok := e.store.Get(user.ID)
	if !ok {
		return Reply{}, false
	}

	switch sess.Step {
	case StepAwaitAccountConfirm:
		return e.stepAccountConfirm(user, sess, in), true
	case StepAwaitCreationDate:
		return e.stepCreationDate(user, sess, in), true
	case StepAwaitAffiliateCode:
		return e.stepAffiliateCode(user, sess, in), true
	case StepAwaitPartnerConfirm:
		return e.stepPartnerConfirm(user, sess, in), true
	case StepAwaitProofWhitelisted, StepAwaitProofPartner, StepAwaitProof:
		return e.stepProof(ctx, user, sess, in), true
	case StepAwaitDepositAmount:
		return e.stepDepositAmount(ctx, user, sess, in), true
	case StepAwaitCodeOrDone:
		return e.stepCodeOrDone(user, sess, in), true
	}

	// Unknown step means a corrupted session; drop it rather than trap the user.
	e.logger.Error("session in unknown step, dropping",
		zap.Int64("user_id", user.ID), zap.Int("step", int(sess.Step)))
	e.store.Delete(user.ID)
	return Reply{Text: "Something went wrong with your session. Please use /start to begin again."}, true
}

func (e *Engine) stepAccountConfirm(user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please answer yes or no: do you already have a Deriv account opened through our link?"}
	}
	yes, ok := parseYesNo(text.Text)
	if !ok {
		return Reply{Text: "Please answer yes or no: do you already have a Deriv account opened through our link?"}
	}
	if !yes {
		e.abort(user, sess, "declined account confirmation")
		return Reply{Text: fmt.Sprintf(
			"You need a Deriv account opened through our link first:\n%s\n\n"+
				"Create the account, then come back and use /start.",
			e.cfg.AffiliateLink)}
	}

	e.transition(user, sess, StepAwaitCreationDate)
	return Reply{Text: "Great! Please enter your Deriv account creation date (YYYY-MM-DD format):"}
}

func (e *Engine) stepCreationDate(user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please enter your account creation date in YYYY-MM-DD format (e.g. 2024-01-15):"}
	}
	creationDate, err := parseDate(text.Text)
	if err != nil {
		return Reply{Text: "❌ Invalid date format. Please use YYYY-MM-DD format (e.g. 2024-01-15):"}
	}

	daysOld := daysSince(creationDate, timeNow())
	if daysOld < e.cfg.MinAccountAgeDays {
		e.abort(user, sess, "account too young")
		return Reply{Text: fmt.Sprintf(
			"⚠️ Your account is only %d days old. Deriv VIP requires accounts "+
				"older than %d days. Please try again later.",
			daysOld, e.cfg.MinAccountAgeDays)}
	}

	sess.Fields.CreationDate = creationDate
	e.transition(user, sess, StepAwaitAffiliateCode)
	return Reply{Text: "✅ Account age verified! Now please provide your Deriv CR number:"}
}

func (e *Engine) stepAffiliateCode(user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please send your Deriv CR number (CR followed by 5-8 digits, e.g. CR5499637):"}
	}
	code := affiliates.Normalize(text.Text)
	if !codePattern.MatchString(code) {
		return Reply{Text: "❌ That doesn't look like a CR number. Format: CR followed by 5-8 digits (e.g. CR5499637):"}
	}

	sess.Fields.AffiliateCode = code
	if e.registry.IsEligible(code) {
		e.transition(user, sess, StepAwaitProofWhitelisted)
		return Reply{Text: fmt.Sprintf(
			"✅ CR number %s verified!\n\n"+
				"Now please upload a screenshot showing your deposit of at least $%.0f USD.\n"+
				"The screenshot should clearly show the amount and your account details.",
			code, e.cfg.MinDepositDerivVIP)}
	}

	e.transition(user, sess, StepAwaitPartnerConfirm)
	return Reply{Text: fmt.Sprintf(
		"CR number %s is not in our affiliate list.\n\n"+
			"Is your account tagged under our partner? (yes/no)", code)}
}

func (e *Engine) stepPartnerConfirm(user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please answer yes or no: is your account tagged under our partner?"}
	}
	yes, ok := parseYesNo(text.Text)
	if !ok {
		return Reply{Text: "Please answer yes or no: is your account tagged under our partner?"}
	}
	if !yes {
		e.abort(user, sess, "partner tag declined")
		return Reply{Text: fmt.Sprintf(
			"Your account needs to be tagged under our partnership first.\n"+
				"Follow the tagging guide: %s\n\n"+
				"Tagging takes up to 24 hours to apply; please retry after that.",
			e.cfg.TaggingGuideURL)}
	}

	sess.Fields.PartnerTagConfirmed = true
	e.transition(user, sess, StepAwaitProofPartner)
	return Reply{Text: fmt.Sprintf(
		"Thanks! Now please upload a screenshot showing your deposit of at least $%.0f USD.",
		e.cfg.MinDepositDerivVIP)}
}

func (e *Engine) stepProof(ctx context.Context, user User, sess *Session, in Input) Reply {
	photo, ok := in.(PhotoInput)
	if !ok {
		return Reply{Text: "📷 Please upload a screenshot of your deposit."}
	}

	amount, found := extractAmount(photo.Caption)
	if !found {
		e.transition(user, sess, StepAwaitDepositAmount)
		return Reply{Text: "Screenshot received. Please type the deposit amount shown on it (USD):"}
	}
	return e.checkDeposit(ctx, user, sess, amount)
}

func (e *Engine) stepDepositAmount(ctx context.Context, user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please enter the deposit amount as a number (e.g. 60):"}
	}
	amount, found := extractAmount(text.Text)
	if !found {
		return Reply{Text: "Please enter the deposit amount as a number (e.g. 60):"}
	}
	return e.checkDeposit(ctx, user, sess, amount)
}

func (e *Engine) stepCodeOrDone(user User, sess *Session, in Input) Reply {
	text, ok := in.(TextInput)
	if !ok {
		return Reply{Text: "Please send your Deriv CR number, or 'done' to continue without it:"}
	}
	if strings.EqualFold(strings.TrimSpace(text.Text), "done") {
		e.transition(user, sess, StepAwaitProof)
		return Reply{Text: fmt.Sprintf(
			"Now please upload a screenshot showing your deposit of at least $%.0f USD.",
			e.cfg.MinDepositMentorship)}
	}

	code := affiliates.Normalize(text.Text)
	if !codePattern.MatchString(code) {
		return Reply{Text: "Please send your Deriv CR number (e.g. CR5499637), or 'done' to continue without it:"}
	}

	// The mentorship flow records the code without a registry lookup.
	sess.Fields.AffiliateCode = code
	e.transition(user, sess, StepAwaitProof)
	return Reply{Text: fmt.Sprintf(
		"CR number %s recorded.\n\nNow please upload a screenshot showing your deposit of at least $%.0f USD.",
		code, e.cfg.MinDepositMentorship)}
}

// checkDeposit applies the minimum-deposit rule, the one terminal gate
// shared by every flow. The boundary is inclusive.
func (e *Engine) checkDeposit(ctx context.Context, user User, sess *Session, amount float64) Reply {
	minimum := e.minDeposit(sess.Flow)
	if amount < minimum {
		e.abort(user, sess, "deposit below minimum")
		return Reply{Text: fmt.Sprintf(
			"❌ A deposit of $%.2f is below the required minimum of $%.2f USD.\n"+
				"Top up your account and start over with /start, or contact admin: %s",
			amount, minimum, e.cfg.AdminContactURL)}
	}

	sess.Fields.DepositAmount = amount
	return e.succeed(ctx, user, sess)
}

// succeed materializes the ticket. On a persistence failure the session and
// its collected fields are kept so the user can resubmit without re-entering
// prior steps.
func (e *Engine) succeed(ctx context.Context, user User, sess *Session) Reply {
	category := sess.Flow.Category()
	description := e.describe(sess)

	ticketID, err := e.tickets.Create(ctx, user.ID, user.DisplayName, category, description)
	if err != nil {
		e.store.Put(user.ID, sess)
		e.logger.Error("ticket materialization failed, session preserved",
			zap.Int64("user_id", user.ID),
			zap.String("category", category),
			zap.Error(err),
		)
		return Reply{Text: "❌ Error processing your request. Please try again in a moment, or contact admin."}
	}

	e.store.Delete(user.ID)
	e.logger.Info("verification succeeded",
		zap.Int64("user_id", user.ID),
		zap.String("category", category),
		zap.String("ticket_id", ticketID),
	)
	return Reply{Text: fmt.Sprintf(
		"✅ %s Request Submitted!\n\n"+
			"📋 Ticket ID: %s\n\n"+
			"Your request is under review. You'll be contacted within 24 hours if approved.\n\n"+
			"Need help? Contact admin: %s",
		category, ticketID, e.cfg.AdminContactURL)}
}

// describe embeds the collected fields into the ticket description.
func (e *Engine) describe(sess *Session) string {
	var lines []string
	switch sess.Flow {
	case FlowDerivVIP:
		path := "whitelisted"
		if sess.Fields.PartnerTagConfirmed {
			path = "partner-tagged"
		}
		lines = append(lines,
			fmt.Sprintf("CR number: %s", sess.Fields.AffiliateCode),
			fmt.Sprintf("Account created: %s", sess.Fields.CreationDate.Format("2006-01-02")),
			fmt.Sprintf("Deposit: %.2f USD", sess.Fields.DepositAmount),
			fmt.Sprintf("Path: %s", path),
		)
	case FlowMentorship:
		code := sess.Fields.AffiliateCode
		if code == "" {
			code = "not provided"
		}
		lines = append(lines,
			fmt.Sprintf("CR number: %s", code),
			fmt.Sprintf("Deposit: %.2f USD", sess.Fields.DepositAmount),
		)
	case FlowCurrenciesOcta, FlowCurrenciesVantage:
		lines = append(lines,
			fmt.Sprintf("Broker: %s", sess.Flow.Broker()),
			fmt.Sprintf("Deposit: %.2f USD", sess.Fields.DepositAmount),
		)
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) minDeposit(flow Flow) float64 {
	switch flow {
	case FlowMentorship:
		return e.cfg.MinDepositMentorship
	case FlowCurrenciesOcta, FlowCurrenciesVantage:
		return e.cfg.MinDepositCurrencies
	}
	return e.cfg.MinDepositDerivVIP
}

func (e *Engine) transition(user User, sess *Session, next Step) {
	prev := sess.Step
	sess.Step = next
	e.store.Put(user.ID, sess)
	e.logger.Info("verification step advanced",
		zap.Int64("user_id", user.ID),
		zap.String("from", prev.String()),
		zap.String("to", next.String()),
	)
}

func (e *Engine) abort(user User, sess *Session, reason string) {
	e.store.Delete(user.ID)
	e.logger.Info("verification aborted",
		zap.Int64("user_id", user.ID),
		zap.String("step", sess.Step.String()),
		zap.String("reason", reason),
	)
}
