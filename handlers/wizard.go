package handlers

import (
	"net/http"
	"strconv"
	"time"

	"sufra/config"
	"sufra/middleware"
	"sufra/models"
	"sufra/services/branch"
	"sufra/services/locale"
	"sufra/services/schedule"
	"sufra/services/wizard"
	"sufra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WizardHandler drives server-side wizard form sessions: one redis-backed
// session per onboarding or edit flow, stepped through the gated controller.
type WizardHandler struct {
	BranchSvc branch.BranchService
	Sessions  *redis.Client
}

// NewWizardHandler creates a new WizardHandler instance.
func NewWizardHandler(branchSvc branch.BranchService, sessions *redis.Client) *WizardHandler {
	return &WizardHandler{BranchSvc: branchSvc, Sessions: sessions}
}

// sessionView is what every session-mutating endpoint returns: enough for the
// client to re-render the wizard without a second request.
type sessionView struct {
	SessionID      string          `json:"sessionId"`
	BranchID       string          `json:"branchId,omitempty"`
	ActiveLanguage string          `json:"activeLanguage"`
	CurrentStep    int             `json:"currentStep"`
	StepCount      int             `json:"stepCount"`
	Form           models.FormData `json:"form"`
	Errors         models.ErrorMap `json:"errors,omitempty"`
}

func view(sess *utils.FormSession, ctrl *wizard.Controller, errs models.ErrorMap) sessionView {
	v := sessionView{
		SessionID:      sess.SessionID,
		BranchID:       sess.BranchID,
		ActiveLanguage: sess.ActiveLanguage,
		CurrentStep:    sess.CurrentStep,
		StepCount:      ctrl.StepCount(),
		Form:           sess.Form,
	}
	if len(errs) > 0 {
		v.Errors = errs
	}
	return v
}

// synchronizer rebuilds the locale synchronizer for a session. The catalog is
// fixed configuration, so this is cheap and keeps no ambient state.
func (h *WizardHandler) synchronizer(sess *utils.FormSession) (*locale.Synchronizer, error) {
	sync, err := locale.NewSynchronizer(config.Languages(), config.AppConfig.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	if err := sync.SetActiveLanguage(&sess.Form, sess.ActiveLanguage); err != nil {
		return nil, err
	}
	return sync, nil
}

func (h *WizardHandler) controller(sess *utils.FormSession, sync *locale.Synchronizer) *wizard.Controller {
	return wizard.Resume(wizard.BranchSteps(), sync, sess.CurrentStep)
}

func (h *WizardHandler) loadSession(c *gin.Context) (*utils.FormSession, bool) {
	sess, err := utils.GetFormSession(h.Sessions, c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found", "the wizard session does not exist or has expired")
		return nil, false
	}
	return sess, true
}

func (h *WizardHandler) saveAndRespond(c *gin.Context, sess *utils.FormSession, ctrl *wizard.Controller, errs models.ErrorMap) {
	if err := utils.SaveFormSession(h.Sessions, sess); err != nil {
		getLogger(c).Error("Failed to save form session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view(sess, ctrl, errs))
}

// StartSessionHandler opens a new wizard session. With a branchId in the body
// the session is an edit flow seeded from the stored branch; without one it is
// an onboarding flow seeded with the default schedule.
func (h *WizardHandler) StartSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	var req struct {
		BranchID string `json:"branchId"`
	}
	// Body is optional for onboarding sessions.
	_ = c.ShouldBindJSON(&req)

	sess := &utils.FormSession{
		SessionID:      uuid.NewString(),
		BranchID:       req.BranchID,
		ActiveLanguage: middleware.GetRequestLanguage(c),
		CurrentStep:    1,
		CreatedAt:      time.Now(),
	}

	if req.BranchID != "" {
		form, err := h.BranchSvc.EditForm(req.BranchID)
		if err != nil {
			logger.Warn("Failed to open edit session", zap.String("branchId", req.BranchID), zap.Error(err))
			utils.JSONError(c, http.StatusNotFound, "Branch not found", err.Error())
			return
		}
		sess.Form = *form
	} else {
		sess.Form = models.FormData{Schedule: schedule.DefaultWeekly()}
	}

	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	sync.InitGroup(&sess.Form)
	if err := sync.SetActiveLanguage(&sess.Form, sess.ActiveLanguage); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported language", err.Error())
		return
	}

	h.saveAndRespond(c, sess, h.controller(sess, sync), nil)
}

// GetSessionHandler returns the current session state.
func (h *WizardHandler) GetSessionHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	c.JSON(http.StatusOK, view(sess, h.controller(sess, sync), nil))
}

// SetFieldHandler writes one form field. Translatable fields go through the
// locale synchronizer; the language defaults to the session's active one.
func (h *WizardHandler) SetFieldHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req struct {
		Field    string `json:"field" binding:"required"`
		Language string `json:"language"`
		Value    string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	ref, ok := models.ParseFieldRef(req.Field)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown field", req.Field)
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}

	if ref.Translatable() {
		lang := req.Language
		if lang == "" {
			lang = sess.ActiveLanguage
		}
		if err := sync.SetValue(&sess.Form, ref, lang, req.Value); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid field write", err.Error())
			return
		}
	} else {
		sess.Form.Set(ref, req.Value)
	}

	h.saveAndRespond(c, sess, h.controller(sess, sync), nil)
}

// SetLanguageHandler switches the session's editing language.
func (h *WizardHandler) SetLanguageHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	if err := sync.SetActiveLanguage(&sess.Form, req.Language); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported language", err.Error())
		return
	}
	sess.ActiveLanguage = req.Language
	h.saveAndRespond(c, sess, h.controller(sess, sync), nil)
}

// BulkFillHandler copies every default-language value into the target
// language. Explicit user action, never automatic.
func (h *WizardHandler) BulkFillHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req struct {
		TargetLanguage string `json:"targetLanguage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	if err := sync.BulkFill(&sess.Form, req.TargetLanguage); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bulk fill rejected", err.Error())
		return
	}
	h.saveAndRespond(c, sess, h.controller(sess, sync), nil)
}

func dayParam(c *gin.Context) (models.DayOfWeek, bool) {
	n, err := strconv.Atoi(c.Param("day"))
	day := models.DayOfWeek(n)
	if err != nil || !day.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day of week", c.Param("day"))
		return 0, false
	}
	return day, true
}

// SetWorkingDayHandler toggles whether the branch operates on a day.
func (h *WizardHandler) SetWorkingDayHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req struct {
		IsWorking *bool `json:"isWorking" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	schedule.SetWorkingDay(&sess.Form.Schedule, day, *req.IsWorking)
	h.scheduleRespond(c, sess)
}

// SetOpen24HoursHandler toggles round-the-clock opening on a day.
func (h *WizardHandler) SetOpen24HoursHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req struct {
		IsOpen24Hours *bool `json:"isOpen24Hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	schedule.SetOpen24Hours(&sess.Form.Schedule, day, *req.IsOpen24Hours)
	h.scheduleRespond(c, sess)
}

// AddTimeSlotHandler appends a default slot to a day.
func (h *WizardHandler) AddTimeSlotHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	if _, err := schedule.AddTimeSlot(&sess.Form.Schedule, day); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot add time slot", err.Error())
		return
	}
	h.scheduleRespond(c, sess)
}

// RemoveTimeSlotHandler removes a slot; the last slot of a working day stays.
func (h *WizardHandler) RemoveTimeSlotHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot index", c.Param("index"))
		return
	}
	if _, err := schedule.RemoveTimeSlot(&sess.Form.Schedule, day, index); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot remove time slot", err.Error())
		return
	}
	h.scheduleRespond(c, sess)
}

// SetSlotTimeHandler edits one side of one slot. The edit itself is not
// validated; validation happens when the user tries to advance.
func (h *WizardHandler) SetSlotTimeHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot index", c.Param("index"))
		return
	}
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	field, ok := schedule.ParseSlotField(req.Field)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown slot field", req.Field)
		return
	}
	value, err := models.ParseLocalTime(req.Value)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		return
	}
	if err := schedule.SetSlotTime(&sess.Form.Schedule, day, index, field, value); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot edit time slot", err.Error())
		return
	}
	h.scheduleRespond(c, sess)
}

func (h *WizardHandler) scheduleRespond(c *gin.Context, sess *utils.FormSession) {
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	h.saveAndRespond(c, sess, h.controller(sess, sync), nil)
}

// AdvanceHandler tries to move to the next step. A failed validation returns
// 422 with the error map and leaves the step unchanged; retrying with the
// same data fails identically.
func (h *WizardHandler) AdvanceHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	ctrl := h.controller(sess, sync)
	if !ctrl.Advance(&sess.Form) {
		c.JSON(http.StatusUnprocessableEntity, view(sess, ctrl, ctrl.Errors()))
		return
	}
	sess.CurrentStep = ctrl.Current()
	h.saveAndRespond(c, sess, ctrl, nil)
}

// RetreatHandler steps back without re-validating.
func (h *WizardHandler) RetreatHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	ctrl := h.controller(sess, sync)
	ctrl.Retreat()
	sess.CurrentStep = ctrl.Current()
	h.saveAndRespond(c, sess, ctrl, nil)
}

// JumpHandler moves directly to an already-reached step, as from the progress
// indicator. Skipping ahead is rejected.
func (h *WizardHandler) JumpHandler(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	ctrl := h.controller(sess, sync)
	if !ctrl.JumpTo(req.Step) {
		utils.JSONError(c, http.StatusBadRequest, "Cannot jump ahead of the current step", "")
		return
	}
	sess.CurrentStep = ctrl.Current()
	h.saveAndRespond(c, sess, ctrl, nil)
}

// SubmitHandler validates the final step and hands the completed form to the
// branch service. A failed external call surfaces one error and leaves the
// session untouched, so the user can correct input and resubmit.
func (h *WizardHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	sync, err := h.synchronizer(sess)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid locale configuration", err.Error())
		return
	}
	ctrl := h.controller(sess, sync)
	if ctrl.Current() != ctrl.StepCount() {
		utils.JSONError(c, http.StatusBadRequest, "Wizard is not on the final step", "")
		return
	}
	if errs := ctrl.Submit(&sess.Form); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, view(sess, ctrl, errs))
		return
	}

	b, err := h.BranchSvc.SubmitBranch(sess)
	if err != nil {
		logger.Error("Branch submission failed", zap.String("sessionId", sess.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to save branch", err.Error())
		return
	}

	sess.BranchID = b.ID
	if err := utils.SaveFormSession(h.Sessions, sess); err != nil {
		logger.Warn("Failed to persist session after submit", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"branch":  b,
		"payload": branch.BuildPayload(&sess.Form),
	})
}
