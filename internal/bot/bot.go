package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/config"
	"calendar-planner/internal/model"
	"calendar-planner/internal/service"
	"calendar-planner/internal/store"
)

const (
	btnSkip             = "⏭️ Skip"
	btnCancelDialog     = "⏪ Cancel input"
	menuLabelMonth      = "🗓 Month"
	menuLabelToday      = "📅 Today"
	menuLabelNewEvent   = "➕ New event"
	menuLabelNewTask    = "➕ New task"
	menuLabelTasks      = "📋 Tasks"
	menuLabelHelp       = "ℹ️ Help"
	callbackNotFound    = "Not found"
	msgEventNotFound    = "Event not found or already deleted."
	msgTaskNotFound     = "Task not found or already deleted."
	msgUnknownMessage   = "I did not understand that. Type /newevent, /newtask or /help."
	msgConversationDone = "⏪ Input cancelled."
)

// Planner is the entity store as seen by the bot.
type Planner interface {
	Snapshot() store.Snapshot
	Events() []model.Event
	Event(id string) (model.Event, bool)
	EventsOn(day time.Time) []model.Event
	AddEvent(ctx context.Context, in model.EventInput) (model.Event, error)
	UpdateEvent(ctx context.Context, id string, in model.EventInput) (bool, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
	Tasks() []model.Task
	Task(id string) (model.Task, bool)
	AddTask(ctx context.Context, in model.TaskInput) (model.Task, error)
	ToggleTask(ctx context.Context, id string) (bool, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}

// sender is the part of the Telegram client used to talk back.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// viewState is the month currently displayed and the selected day of a chat.
type viewState struct {
	month    time.Time
	selected time.Time
}

// Bot aggregates Telegram API with the planner.
type Bot struct {
	api     *tgbotapi.BotAPI
	out     sender
	planner Planner
	agenda  *service.AgendaService
	config  *config.Config
	now     func() time.Time

	mu            sync.Mutex
	conversations map[int64]*conversationState
	views         map[int64]*viewState
	chats         map[int64]struct{}
}

func New(token string, planner Planner, agenda *service.AgendaService, cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	b := newBot(api, planner, agenda, cfg)
	b.api = api
	return b, nil
}

func newBot(out sender, planner Planner, agenda *service.AgendaService, cfg *config.Config) *Bot {
	return &Bot{
		out:           out,
		planner:       planner,
		agenda:        agenda,
		config:        cfg,
		now:           time.Now,
		conversations: make(map[int64]*conversationState),
		views:         make(map[int64]*viewState),
		chats:         make(map[int64]struct{}),
	}
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return errors.New("bot api is not configured")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if err := b.HandleUpdate(ctx, update); err != nil {
			log.Printf("handle update %d: %v", update.UpdateID, err)
		}
	}

	return ctx.Err()
}

// HandleUpdate dispatches a single update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
			return nil
		}
		return b.handleMessage(ctx, update.Message)
	}
	return nil
}

func (b *Bot) allowed(from *tgbotapi.User) bool {
	if from == nil {
		return false
	}
	if b.config == nil || b.config.OwnerID == 0 {
		return true
	}
	return from.ID == b.config.OwnerID
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.allowed(msg.From) {
		return nil
	}

	if !msg.IsCommand() && isCancelDialogInput(msg.Text) {
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, msgConversationDone)
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if b.hasConversation(msg.From.ID) {
		return b.handleConversation(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, msgUnknownMessage)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())
	switch msg.Command() {
	case "start":
		return b.handleStart(msg)
	case "help":
		return b.sendText(msg.Chat.ID, helpText)
	case "month":
		return b.handleMonth(msg.Chat.ID, args)
	case "day":
		return b.handleDay(msg.Chat.ID, args)
	case "newevent":
		return b.startConversation(msg.From.ID, msg.Chat.ID, newEventConversation(b.selectedDay(msg.Chat.ID)))
	case "editevent":
		return b.startEditEvent(msg.From.ID, msg.Chat.ID, args)
	case "delevent":
		return b.deleteEvent(ctx, msg.Chat.ID, args)
	case "newtask":
		return b.startConversation(msg.From.ID, msg.Chat.ID, newTaskConversation())
	case "tasks":
		return b.sendTaskList(msg.Chat.ID)
	case "toggle":
		return b.toggleTask(ctx, msg.Chat.ID, args)
	case "deltask":
		return b.deleteTask(ctx, msg.Chat.ID, args)
	case "report":
		return b.sendText(msg.Chat.ID, b.agenda.DailySummary(b.now()))
	case "export":
		return b.handleExport(msg.Chat.ID)
	case "cancel":
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, msgConversationDone)
	default:
		return b.sendText(msg.Chat.ID, "Unsupported command. See /help.")
	}
}

const helpText = "ℹ️ <b>Commands</b>\n" +
	"• /month [YYYY-MM] — month grid; tap a day to select it\n" +
	"• /day [YYYY-MM-DD] — events of a day\n" +
	"• /newevent — add an event step by step\n" +
	"• /editevent &lt;id&gt; — edit an event\n" +
	"• /delevent &lt;id&gt; — delete an event\n" +
	"• /newtask — add a task\n" +
	"• /tasks — task list with progress\n" +
	"• /toggle &lt;id&gt; — mark a task done or open\n" +
	"• /deltask &lt;id&gt; — delete a task\n" +
	"• /report — today's agenda\n" +
	"• /export — download events as .ics\n" +
	"• /cancel — cancel the current input"

func (b *Bot) handleStart(msg *tgbotapi.Message) error {
	b.mu.Lock()
	b.chats[msg.Chat.ID] = struct{}{}
	b.mu.Unlock()

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}
	text := fmt.Sprintf("👋 Hi, %s!\n<b>I keep your calendar and tasks.</b>\n\n%s", html.EscapeString(name), helpText)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleMonth(chatID int64, args string) error {
	view := b.view(chatID)
	if args != "" {
		month, err := calendar.ParseMonth(args, b.now().Location())
		if err != nil {
			return b.sendText(chatID, "Use /month 2026-10.")
		}
		b.mu.Lock()
		view.month = month
		b.mu.Unlock()
	}
	return b.sendMonth(chatID)
}

func (b *Bot) handleDay(chatID int64, args string) error {
	day := b.now()
	if args != "" {
		parsed, err := calendar.ParseDay(args, b.now().Location())
		if err != nil {
			return b.sendText(chatID, "Use /day 2026-10-14.")
		}
		day = parsed
	}
	b.selectDay(chatID, day)
	return b.sendAgenda(chatID, day)
}

func (b *Bot) sendMonth(chatID int64) error {
	view := b.view(chatID)
	b.mu.Lock()
	month, selected := view.month, view.selected
	b.mu.Unlock()

	events := b.planner.Events()
	mv := service.BuildMonthView(month, selected, b.now(), events)
	agenda := service.DayAgenda(selected, events)

	msg := tgbotapi.NewMessage(chatID, monthText(mv, agenda))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = monthKeyboard(mv)
	_, err := b.out.Send(msg)
	return err
}

func (b *Bot) sendAgenda(chatID int64, day time.Time) error {
	agenda := service.DayAgenda(day, b.planner.Events())
	msg := tgbotapi.NewMessage(chatID, strings.TrimSpace(agendaText(agenda)))
	msg.ParseMode = tgbotapi.ModeHTML
	if kb := agendaKeyboard(agenda); kb != nil {
		msg.ReplyMarkup = *kb
	} else {
		msg.ReplyMarkup = mainMenuKeyboard()
	}
	_, err := b.out.Send(msg)
	return err
}

func (b *Bot) sendTaskList(chatID int64) error {
	tasks := b.planner.Tasks()
	msg := tgbotapi.NewMessage(chatID, taskListText(tasks, b.now()))
	msg.ParseMode = tgbotapi.ModeHTML
	if kb := taskListKeyboard(tasks); kb != nil {
		msg.ReplyMarkup = *kb
	} else {
		msg.ReplyMarkup = mainMenuKeyboard()
	}
	_, err := b.out.Send(msg)
	return err
}

func (b *Bot) handleExport(chatID int64) error {
	body, err := service.ExportICS(b.planner.Events(), b.now())
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Export failed: %s", html.EscapeString(err.Error())))
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "calendar.ics", Bytes: body})
	doc.Caption = "🗓 Your events in iCalendar format."
	_, err = b.out.Send(doc)
	return err
}

func (b *Bot) startConversation(userID, chatID int64, state *conversationState) error {
	log.Printf("[info] start conversation user=%d kind=%d edit=%q", userID, state.kind, state.editID)
	b.setConversation(userID, state)
	return b.sendWithReplyMarkup(chatID, state.prompt(), stageKeyboard(state))
}

func (b *Bot) startEditEvent(userID, chatID int64, id string) error {
	if id == "" {
		return b.sendText(chatID, "Give the event id: /editevent &lt;id&gt;")
	}
	ev, ok := b.planner.Event(id)
	if !ok {
		return b.sendText(chatID, msgEventNotFound)
	}
	return b.startConversation(userID, chatID, editEventConversation(ev))
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	state := b.getConversation(msg.From.ID)
	if state == nil {
		return nil
	}

	if correction := state.apply(msg.Text, b.now().Location()); correction != "" {
		return b.sendWithReplyMarkup(msg.Chat.ID, correction, stageKeyboard(state))
	}
	if !state.done() {
		return b.sendWithReplyMarkup(msg.Chat.ID, state.prompt(), stageKeyboard(state))
	}

	b.clearConversation(msg.From.ID)
	if state.kind == kindTask {
		return b.finishTask(ctx, msg.Chat.ID, state.task)
	}
	return b.finishEvent(ctx, msg.Chat.ID, state)
}

func (b *Bot) finishEvent(ctx context.Context, chatID int64, state *conversationState) error {
	if state.editing() {
		ok, err := b.planner.UpdateEvent(ctx, state.editID, state.event)
		if err != nil {
			return b.sendText(chatID, fmt.Sprintf("Could not save the event: %s", html.EscapeString(err.Error())))
		}
		if !ok {
			return b.sendText(chatID, msgEventNotFound)
		}
		ev, _ := b.planner.Event(state.editID)
		if err := b.sendText(chatID, eventSummary(ev, "✏️ <b>Event updated</b>")); err != nil {
			return err
		}
		return b.sendAgenda(chatID, ev.Date)
	}

	ev, err := b.planner.AddEvent(ctx, state.event)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not save the event: %s", html.EscapeString(err.Error())))
	}
	if err := b.sendText(chatID, eventSummary(ev, "✅ <b>Event saved</b>")); err != nil {
		return err
	}
	b.selectDay(chatID, ev.Date)
	return b.sendAgenda(chatID, ev.Date)
}

func (b *Bot) finishTask(ctx context.Context, chatID int64, input model.TaskInput) error {
	task, err := b.planner.AddTask(ctx, input)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not save the task: %s", html.EscapeString(err.Error())))
	}
	if err := b.sendText(chatID, taskSummary(task)); err != nil {
		return err
	}
	return b.sendTaskList(chatID)
}

func (b *Bot) deleteEvent(ctx context.Context, chatID int64, id string) error {
	if id == "" {
		return b.sendText(chatID, "Give the event id: /delevent &lt;id&gt;")
	}
	ev, found := b.planner.Event(id)
	ok, err := b.planner.DeleteEvent(ctx, id)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not delete the event: %s", html.EscapeString(err.Error())))
	}
	if !ok || !found {
		return b.sendText(chatID, msgEventNotFound)
	}
	return b.sendText(chatID, fmt.Sprintf("🗑 Event «%s» deleted.", html.EscapeString(ev.Title)))
}

func (b *Bot) toggleTask(ctx context.Context, chatID int64, id string) error {
	if id == "" {
		return b.sendText(chatID, "Give the task id: /toggle &lt;id&gt;")
	}
	ok, err := b.planner.ToggleTask(ctx, id)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not update the task: %s", html.EscapeString(err.Error())))
	}
	if !ok {
		return b.sendText(chatID, msgTaskNotFound)
	}
	return b.sendTaskList(chatID)
}

func (b *Bot) deleteTask(ctx context.Context, chatID int64, id string) error {
	if id == "" {
		return b.sendText(chatID, "Give the task id: /deltask &lt;id&gt;")
	}
	task, found := b.planner.Task(id)
	ok, err := b.planner.DeleteTask(ctx, id)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not delete the task: %s", html.EscapeString(err.Error())))
	}
	if !ok || !found {
		return b.sendText(chatID, msgTaskNotFound)
	}
	if err := b.sendText(chatID, fmt.Sprintf("🗑 Task «%s» deleted.", html.EscapeString(task.Title))); err != nil {
		return err
	}
	return b.sendTaskList(chatID)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}
	if !b.allowed(cb.From) {
		return b.answer(cb.ID, "")
	}

	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbDayPrefix):
		day, err := calendar.ParseDay(strings.TrimPrefix(data, cbDayPrefix), b.now().Location())
		if err != nil {
			return b.answer(cb.ID, "")
		}
		b.answer(cb.ID, calendar.FormatShortDate(day))
		b.selectDay(chatID, day)
		return b.sendAgenda(chatID, day)
	case strings.HasPrefix(data, cbNavPrefix):
		month, err := calendar.ParseMonth(strings.TrimPrefix(data, cbNavPrefix), b.now().Location())
		if err != nil {
			return b.answer(cb.ID, "")
		}
		b.answer(cb.ID, "")
		view := b.view(chatID)
		b.mu.Lock()
		view.month = month
		b.mu.Unlock()
		return b.sendMonth(chatID)
	case strings.HasPrefix(data, cbToggleTaskPrefix):
		id := strings.TrimPrefix(data, cbToggleTaskPrefix)
		log.Printf("[info] callback toggle user=%d task=%s", cb.From.ID, id)
		ok, err := b.planner.ToggleTask(ctx, id)
		if err != nil {
			b.answer(cb.ID, "")
			return err
		}
		if !ok {
			return b.answer(cb.ID, callbackNotFound)
		}
		b.answer(cb.ID, "")
		return b.sendTaskList(chatID)
	case strings.HasPrefix(data, cbDeleteTaskPrefix):
		log.Printf("[info] callback delete task user=%d task=%s", cb.From.ID, strings.TrimPrefix(data, cbDeleteTaskPrefix))
		b.answer(cb.ID, "")
		return b.deleteTask(ctx, chatID, strings.TrimPrefix(data, cbDeleteTaskPrefix))
	case strings.HasPrefix(data, cbDeleteEvtPrefix):
		log.Printf("[info] callback delete event user=%d event=%s", cb.From.ID, strings.TrimPrefix(data, cbDeleteEvtPrefix))
		b.answer(cb.ID, "")
		return b.deleteEvent(ctx, chatID, strings.TrimPrefix(data, cbDeleteEvtPrefix))
	case strings.HasPrefix(data, cbEditEvtPrefix):
		b.answer(cb.ID, "")
		return b.startEditEvent(cb.From.ID, chatID, strings.TrimPrefix(data, cbEditEvtPrefix))
	default:
		return b.answer(cb.ID, "")
	}
}

func (b *Bot) answer(callbackID, text string) error {
	if _, err := b.out.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("callback ack: %v", err)
	}
	return nil
}

// SendDailyReports sends the agenda to the owner and every chat seen by /start.
func (b *Bot) SendDailyReports(ctx context.Context) error {
	b.mu.Lock()
	targets := make([]int64, 0, len(b.chats)+1)
	for id := range b.chats {
		targets = append(targets, id)
	}
	if b.config != nil && b.config.OwnerID != 0 {
		if _, seen := b.chats[b.config.OwnerID]; !seen {
			targets = append(targets, b.config.OwnerID)
		}
	}
	b.mu.Unlock()

	text := b.agenda.DailySummary(b.now())
	for _, chatID := range targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.sendText(chatID, text); err != nil {
			log.Printf("send summary to %d: %v", chatID, err)
		}
	}
	return nil
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	switch strings.TrimSpace(msg.Text) {
	case menuLabelMonth:
		return true, b.sendMonth(msg.Chat.ID)
	case menuLabelToday:
		return true, b.handleDay(msg.Chat.ID, "")
	case menuLabelNewEvent:
		return true, b.startConversation(msg.From.ID, msg.Chat.ID, newEventConversation(b.selectedDay(msg.Chat.ID)))
	case menuLabelNewTask:
		return true, b.startConversation(msg.From.ID, msg.Chat.ID, newTaskConversation())
	case menuLabelTasks:
		return true, b.sendTaskList(msg.Chat.ID)
	case menuLabelHelp:
		return true, b.sendText(msg.Chat.ID, helpText)
	default:
		return false, nil
	}
}

func (b *Bot) view(chatID int64) *viewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.views[chatID]
	if !ok {
		today := calendar.StartOfDay(b.now())
		v = &viewState{month: calendar.FirstOfMonth(today), selected: today}
		b.views[chatID] = v
	}
	return v
}

func (b *Bot) selectedDay(chatID int64) time.Time {
	v := b.view(chatID)
	b.mu.Lock()
	defer b.mu.Unlock()
	return v.selected
}

// selectDay also moves the grid to the selected day's month.
func (b *Bot) selectDay(chatID int64, day time.Time) {
	v := b.view(chatID)
	b.mu.Lock()
	defer b.mu.Unlock()
	v.selected = calendar.StartOfDay(day)
	v.month = calendar.FirstOfMonth(day)
}

func (b *Bot) sendText(chatID int64, text string) error {
	return b.sendWithReplyMarkup(chatID, text, mainMenuKeyboard())
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.out.Send(msg)
	return err
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) hasConversation(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[userID]
	return ok
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelMonth),
			tgbotapi.NewKeyboardButton(menuLabelToday),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelNewEvent),
			tgbotapi.NewKeyboardButton(menuLabelNewTask),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelTasks),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func categoryKeyboard() tgbotapi.ReplyKeyboardMarkup {
	cats := model.Categories()
	row := make([]tgbotapi.KeyboardButton, 0, len(cats))
	for _, c := range cats {
		row = append(row, tgbotapi.NewKeyboardButton(string(c)))
	}
	kb := tgbotapi.NewReplyKeyboard(
		row,
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func priorityKeyboard() tgbotapi.ReplyKeyboardMarkup {
	prios := model.Priorities()
	row := make([]tgbotapi.KeyboardButton, 0, len(prios))
	for _, p := range prios {
		row = append(row, tgbotapi.NewKeyboardButton(string(p)))
	}
	kb := tgbotapi.NewReplyKeyboard(
		row,
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

// stageKeyboard picks the reply keyboard offered with a conversation prompt.
func stageKeyboard(state *conversationState) tgbotapi.ReplyKeyboardMarkup {
	switch state.stage {
	case stageCategory:
		return categoryKeyboard()
	case stagePriority:
		return priorityKeyboard()
	case stageTitle, stageStart, stageEnd:
		if state.editing() {
			return skipKeyboard()
		}
		return cancelKeyboard()
	default:
		return skipKeyboard()
	}
}

func isSkipInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == "-" || value == strings.ToLower(btnSkip) || value == "skip"
}

func isCancelDialogInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancelDialog) || value == "cancel"
}
