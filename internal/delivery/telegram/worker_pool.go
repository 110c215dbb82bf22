package telegram

import (
	"context"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

// turnRequest is one queued dialogue turn.
type turnRequest struct {
	ctx    context.Context
	chatID int64
	text   string
}

const (
	maxRequestsPerSecond = 3
	requestQueueSize     = 100
	defaultWorkerCount   = 8
	turnTimeout          = 30 * time.Second
	rateLimiterIdleTime  = 10 * time.Minute
)

// workerPool processes turns in parallel with per-chat rate limiting.
type workerPool struct {
	requestQueue chan *turnRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	rateMu    sync.Mutex
	rateState map[int64]*chatRate
}

type chatRate struct {
	lastRequest  time.Time
	requestCount int
}

func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		requestQueue: make(chan *turnRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		rateState:    make(map[int64]*chatRate),
	}
}

func (wp *workerPool) start(ctx context.Context) {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx)
	}
	go wp.cleanupRateState(ctx)
}

func (wp *workerPool) worker(ctx context.Context) {
	defer wp.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-wp.requestQueue:
			if !ok || req == nil {
				return
			}
			if !wp.allow(req.chatID) {
				wp.handler.sendPlain(req.chatID, "طلبات كثيرة متتالية، انتظر لحظة ثم أعد المحاولة.")
				continue
			}
			wp.processTurn(req)
		}
	}
}

func (wp *workerPool) processTurn(req *turnRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, turnTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			wp.handler.log.Error("panic in turn processing",
				zap.Int64("chat", req.chatID), zap.Any("panic", r))
			wp.handler.sendPlain(req.chatID, "حدث خطأ داخلي، أعد المحاولة.")
		}
	}()

	wp.handler.bot.Send(tgbotapi.NewChatAction(req.chatID, tgbotapi.ChatTyping))

	sessionID := strconv.FormatInt(req.chatID, 10)
	reply, err := wp.handler.assist.Advance(ctx, sessionID, req.text, entity.SlotSet{})
	if err != nil {
		wp.handler.log.Error("turn failed", zap.Int64("chat", req.chatID), zap.Error(err))
		wp.handler.sendPlain(req.chatID, "عذرًا، حدث خطأ. أعد المحاولة.")
		return
	}
	wp.handler.sendReply(req.chatID, reply)
}

// allow applies a simple per-chat per-second cap.
func (wp *workerPool) allow(chatID int64) bool {
	wp.rateMu.Lock()
	defer wp.rateMu.Unlock()

	now := time.Now()
	state, ok := wp.rateState[chatID]
	if !ok || now.Sub(state.lastRequest) >= time.Second {
		wp.rateState[chatID] = &chatRate{lastRequest: now, requestCount: 1}
		return true
	}
	if state.requestCount >= maxRequestsPerSecond {
		return false
	}
	state.requestCount++
	return true
}

func (wp *workerPool) cleanupRateState(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			wp.rateMu.Lock()
			for chatID, state := range wp.rateState {
				if now.Sub(state.lastRequest) > rateLimiterIdleTime {
					delete(wp.rateState, chatID)
				}
			}
			wp.rateMu.Unlock()
		}
	}
}

func (wp *workerPool) submit(req *turnRequest) bool {
	select {
	case wp.requestQueue <- req:
		return true
	default:
		wp.handler.sendPlain(req.chatID, "البوت مشغول حاليًا، انتظر قليلًا.")
		return false
	}
}

func (wp *workerPool) shutdown() {
	close(wp.requestQueue)
	wp.wg.Wait()
}
