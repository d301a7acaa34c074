package handlers

import (
	"net/http"

	"sufra/services/branch"
	"sufra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BranchHandler exposes branch management and the recycle bin.
type BranchHandler struct {
	Service branch.BranchService
}

// NewBranchHandler creates a new BranchHandler instance.
func NewBranchHandler(svc branch.BranchService) *BranchHandler {
	return &BranchHandler{Service: svc}
}

// ListBranchesHandler returns all live branches.
func (h *BranchHandler) ListBranchesHandler(c *gin.Context) {
	logger := getLogger(c)
	branches, err := h.Service.ListBranches()
	if err != nil {
		logger.Error("Failed to list branches", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list branches", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// GetBranchHandler returns one branch.
func (h *BranchHandler) GetBranchHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	b, err := h.Service.GetBranch(id)
	if err != nil {
		logger.Warn("Branch not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Branch not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBranchHandler moves a branch into the recycle bin.
func (h *BranchHandler) DeleteBranchHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.DeleteBranch(id); err != nil {
		logger.Error("Failed to delete branch", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Failed to delete branch", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch moved to recycle bin"})
}

// RestoreBranchHandler takes a branch back out of the recycle bin.
func (h *BranchHandler) RestoreBranchHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.RestoreBranch(id); err != nil {
		logger.Error("Failed to restore branch", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Failed to restore branch", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch restored"})
}

// RecycleBinHandler lists soft-deleted branches awaiting restore or purge.
func (h *BranchHandler) RecycleBinHandler(c *gin.Context) {
	logger := getLogger(c)
	branches, err := h.Service.ListRecycleBin()
	if err != nil {
		logger.Error("Failed to list recycle bin", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list recycle bin", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}
