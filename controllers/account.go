package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixmyrp-backend/repository"
	"fixmyrp-backend/utils"
)

// AccountController covers the per-field profile updates for both account
// types. The routes are unconditional find-by-email-and-set: a missing
// account still answers 200, except the admin name route which reports 404.
type AccountController struct {
	users   repository.UserRepository
	admins  repository.AdminRepository
	reports repository.ReportRepository
}

func NewAccountController(users repository.UserRepository, admins repository.AdminRepository, reports repository.ReportRepository) *AccountController {
	return &AccountController{users: users, admins: admins, reports: reports}
}

func (ac *AccountController) UpdateUserName(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.users.UpdateName(ctx, email, input.Name); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update name"})
		return
	}

	// the submitter name is denormalized onto reports
	if _, err := ac.reports.UpdateNameByEmail(ctx, email, input.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Name updated"})
}

func (ac *AccountController) UpdateUserContact(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		ContactNumber string `json:"contactNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.users.UpdateContact(ctx, email, input.ContactNumber); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated"})
}

func (ac *AccountController) UpdateUserEmail(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		NewEmail string `json:"newEmail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.users.UpdateEmail(ctx, email, input.NewEmail); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email updated"})
}

func (ac *AccountController) UpdateUserPassword(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.users.UpdatePassword(ctx, email, hashed); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (ac *AccountController) UpdateAdminName(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ac.admins.UpdateName(ctx, email, input.Name)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin name updated"})
}

func (ac *AccountController) UpdateAdminContact(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		ContactNumber string `json:"contactNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.admins.UpdateContact(ctx, email, input.ContactNumber); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin contact updated"})
}

func (ac *AccountController) UpdateAdminEmail(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		NewEmail string `json:"newEmail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.admins.UpdateEmail(ctx, email, input.NewEmail); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin email updated"})
}

func (ac *AccountController) UpdateAdminPassword(c *gin.Context) {
	email := c.Param("email")
	var input struct {
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.admins.UpdatePassword(ctx, email, hashed); err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin password updated"})
}
