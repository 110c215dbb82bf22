package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
	"github.com/yourusername/customs-ai-bot/pkg/artext"
)

// AssistUseCase is the conversational duty-estimation engine.
type AssistUseCase interface {
	// Advance handles one dialogue turn for a session: it resolves the
	// item on the first turn, asks for the next missing quantity, or
	// answers with a duty estimate once everything is known.
	Advance(ctx context.Context, sessionID, text string, external entity.SlotSet) (entity.Reply, error)

	// Ask answers a single-shot question with the duty for one unit of
	// the matched item, without opening a dialogue.
	Ask(ctx context.Context, query string) (entity.Reply, error)
}

// Config is the externally owned tuning surface of the engine.
type Config struct {
	Duty            DutyConfig
	DirectThreshold float64 // accept a candidate at or below this score
	FuzzyThreshold  float64 // outer acceptance bound
	CalculatorURL   string
	Synonyms        map[string][]string // nil means the built-in dictionary
}

type assistUseCase struct {
	catalogRepo repository.CatalogRepository
	sessionRepo repository.SessionRepository
	synonymRepo repository.SynonymRepository // optional
	aiRepo      repository.AIRepository     // optional
	expander    *synonymExpander
	cfg         Config
	log         *zap.Logger
}

// NewAssistUseCase wires the engine. synonymRepo and aiRepo may be nil.
func NewAssistUseCase(
	catalogRepo repository.CatalogRepository,
	sessionRepo repository.SessionRepository,
	synonymRepo repository.SynonymRepository,
	aiRepo repository.AIRepository,
	cfg Config,
	log *zap.Logger,
) AssistUseCase {
	return &assistUseCase{
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		synonymRepo: synonymRepo,
		aiRepo:      aiRepo,
		expander:    newSynonymExpander(cfg.Synonyms, synonymRepo),
		cfg:         cfg,
		log:         log,
	}
}

// User-facing messages, wording kept close to the original assistant.
const (
	msgCatalogUnavailable = "قائمة الأسعار غير محمّلة على الخادم. تأكد أن ملف الأسعار موجود ثم أعد المحاولة."
	msgNotFound           = "لم أجد هذا الصنف في القائمة. جرّب اسمًا أقرب أو افتح قائمة الأسعار في التطبيق الأساسي."
	msgPriceUnknown       = "وجدت الصنف في القائمة لكن سعره غير معروف. عدّل السعر من التطبيق الأساسي ثم أعد المحاولة."
)

func (u *assistUseCase) Advance(ctx context.Context, sessionID, text string, external entity.SlotSet) (entity.Reply, error) {
	turnID := uuid.New().String()
	norm := artext.Normalize(text)

	stored, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return entity.Reply{}, fmt.Errorf("failed to load session: %w", err)
	}

	// Work on a copy; the stored state is replaced only after the whole
	// turn succeeds, so a failed turn leaves the dialogue untouched.
	state := &entity.ConversationState{SessionID: sessionID}
	if stored != nil {
		state = stored
	}

	if state.Entry == nil {
		if u.catalogRepo.Count(ctx) == 0 {
			return entity.Reply{Kind: entity.ReplyUnavailable, Text: msgCatalogUnavailable}, nil
		}
		hit, ok := u.resolveItem(ctx, norm)
		if !ok {
			return u.replyNotFound(ctx, text, norm)
		}
		entry := hit.Entry
		state.Entry = &entry
		state.Query = norm
		state.Intent = classifyIntent(norm+" "+entry.Name, entry.UnitKind())
		u.log.Debug("item resolved",
			zap.String("turn", turnID),
			zap.String("item", entry.Name),
			zap.Float64("score", hit.Score),
			zap.String("intent", state.Intent.String()))
	}

	extracted := extractSlots(norm, state.PendingSlot)
	state.Slots.Merge(extracted)
	state.Slots.Merge(external)

	if state.Intent == entity.IntentRolls && state.Slots.RollType != "" {
		u.refineRollVariant(ctx, state)
	}

	entry := *state.Entry
	missing := missingSlots(state.Intent, entry.UnitKind(), state.Slots)
	if len(missing) == 0 {
		amount, ok := computeAmount(entry, state.Intent, state.Slots)
		if !ok {
			if !(entry.Price > 0) {
				// More slots cannot fix a priceless entry.
				_ = u.sessionRepo.Clear(ctx, sessionID)
				return entity.Reply{Kind: entity.ReplyUnavailable, Text: msgPriceUnknown}, nil
			}
			// Indeterminate: some provided quantity was zero. Drop it and
			// ask again rather than answering with a degenerate number.
			clearInvalidNumeric(&state.Slots)
			missing = missingSlots(state.Intent, entry.UnitKind(), state.Slots)
		} else {
			reply := u.renderComputed(entry, amount)
			if err := u.sessionRepo.Clear(ctx, sessionID); err != nil {
				return entity.Reply{}, fmt.Errorf("failed to clear session: %w", err)
			}
			u.log.Info("duty computed",
				zap.String("turn", turnID),
				zap.String("item", entry.Name),
				zap.Float64("amount_usd", reply.AmountUSD),
				zap.Int64("amount_yer", reply.AmountYER))
			return reply, nil
		}
	}

	if len(missing) == 0 {
		// All slots nominally present yet nothing to ask: treat like a
		// fresh start instead of looping.
		_ = u.sessionRepo.Clear(ctx, sessionID)
		return entity.Reply{Kind: entity.ReplyUnavailable, Text: msgPriceUnknown}, nil
	}

	next := missing[0]
	state.PendingSlot = next.Name
	state.Touch()
	if err := u.sessionRepo.Save(ctx, state); err != nil {
		return entity.Reply{}, fmt.Errorf("failed to save session: %w", err)
	}
	return entity.Reply{
		Kind:    entity.ReplyFollowUp,
		Text:    next.Prompt,
		Ask:     next.Prompt,
		Choices: next.Choices,
	}, nil
}

// resolveItem searches every synonym expansion of the query and keeps the
// best-scoring candidate; acceptance is two-banded (direct hit, then the
// wider fuzzy bound).
func (u *assistUseCase) resolveItem(ctx context.Context, norm string) (entity.ScoredEntry, bool) {
	var best entity.ScoredEntry
	found := false
	for _, variant := range u.expander.Expand(ctx, norm) {
		ranked, err := u.catalogRepo.Search(ctx, variant)
		if err != nil || len(ranked) == 0 {
			continue
		}
		if !found || ranked[0].Score < best.Score {
			best = ranked[0]
			found = true
		}
		if found && best.Score <= u.cfg.DirectThreshold {
			return best, true
		}
	}
	if found && best.Score <= u.cfg.FuzzyThreshold {
		return best, true
	}
	return entity.ScoredEntry{}, false
}

// replyNotFound builds the no-match reply: nearest-name suggestions, the
// unmatched-query log, and the idempotent learned-synonym write that lets an
// identical future query resolve directly.
func (u *assistUseCase) replyNotFound(ctx context.Context, raw, norm string) (entity.Reply, error) {
	suggestions, err := u.catalogRepo.Suggest(ctx, norm, constants.MaxSuggestions)
	if err != nil {
		suggestions = nil
	}

	if u.synonymRepo != nil {
		if err := u.synonymRepo.LogUnmatched(ctx, raw); err != nil {
			u.log.Warn("failed to log unmatched query", zap.Error(err))
		}
		if len(suggestions) > 0 {
			if err := u.synonymRepo.Learn(ctx, norm, artext.Normalize(suggestions[0])); err != nil {
				u.log.Warn("failed to learn synonym", zap.Error(err))
			}
		}
	}

	text := msgNotFound
	if len(suggestions) > 0 {
		text += "\n\nهل تقصد: " + strings.Join(suggestions, "، ") + "؟"
	} else if u.aiRepo != nil {
		if advice, err := u.aiRepo.GenerateFallback(ctx, raw); err == nil && advice != "" {
			text += "\n\n" + advice
		}
	}

	return entity.Reply{
		Kind:        entity.ReplyNotFound,
		Text:        text,
		Suggestions: suggestions,
		Choices:     suggestions,
	}, nil
}

// refineRollVariant re-queries the catalog with the roll type's tokens so
// sub-variants sharing a base name (transparent vs printed) resolve to the
// right row. The first re-query hit whose name carries a type token wins,
// else the top hit.
func (u *assistUseCase) refineRollVariant(ctx context.Context, state *entity.ConversationState) {
	tokens := rollTypeTokens[state.Slots.RollType]
	if len(tokens) == 0 {
		return
	}
	nameNorm := artext.Normalize(state.Entry.Name)
	for _, tok := range tokens {
		if strings.Contains(nameNorm, tok) {
			return // already the right variant
		}
	}

	ranked, err := u.catalogRepo.Search(ctx, state.Query+" "+tokens[0])
	if err != nil || len(ranked) == 0 {
		return
	}
	for _, cand := range ranked {
		if cand.Score > u.cfg.FuzzyThreshold {
			break
		}
		candNorm := artext.Normalize(cand.Entry.Name)
		for _, tok := range tokens {
			if strings.Contains(candNorm, tok) {
				entry := cand.Entry
				state.Entry = &entry
				return
			}
		}
	}
	if ranked[0].Score <= u.cfg.FuzzyThreshold {
		entry := ranked[0].Entry
		state.Entry = &entry
	}
}

func (u *assistUseCase) renderComputed(entry entity.CatalogEntry, amountUSD float64) entity.Reply {
	pct := parseDutyCategory(entry.Notes, u.cfg.Duty.DefaultCategory)
	yer := convertDuty(amountUSD, pct, u.cfg.Duty)

	summary := entry.Summary()
	text := fmt.Sprintf(
		"الصنف الأقرب لطلبك: %s\nالسعر المسجّل: %g$ للوحدة (%s).\nالفئة الجمركية: %d%%.\nالرسوم التقريبية: %d ريال يمني.",
		entry.Name, entry.Price, unitLabel(entry.Unit), pct, yer)
	if u.cfg.CalculatorURL != "" {
		text += "\n\nرابط الحاسبة: " + u.cfg.CalculatorURL
	}

	return entity.Reply{
		Kind:      entity.ReplyComputed,
		Text:      text,
		AmountUSD: amountUSD,
		DutyPct:   pct,
		AmountYER: yer,
		Item:      &summary,
		OpenCalc:  u.cfg.CalculatorURL,
	}
}

func unitLabel(unit string) string {
	if strings.TrimSpace(unit) == "" {
		return "وحدة"
	}
	return unit
}

// Ask answers a one-shot query with the duty for a single unit, the way the
// original calculator link flow did.
func (u *assistUseCase) Ask(ctx context.Context, query string) (entity.Reply, error) {
	if u.catalogRepo.Count(ctx) == 0 {
		return entity.Reply{Kind: entity.ReplyUnavailable, Text: msgCatalogUnavailable}, nil
	}
	norm := artext.Normalize(query)
	hit, ok := u.resolveItem(ctx, norm)
	if !ok {
		return u.replyNotFound(ctx, query, norm)
	}
	if !(hit.Entry.Price > 0) {
		return entity.Reply{Kind: entity.ReplyUnavailable, Text: msgPriceUnknown}, nil
	}
	reply := u.renderComputed(hit.Entry, hit.Entry.Price)
	reply.Text += "\n\n🔢 إذا تريد تحسب عدة كراتين أو درازن أو أطنان، أرسل سؤالك في المحادثة وسأسألك عن الكمية."
	return reply, nil
}
