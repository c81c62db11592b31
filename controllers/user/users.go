package usercontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/controllers/httperr"
	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type updateUserInput struct {
	Name      string `json:"name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

// POST /users — public registration.
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error(), "status": http.StatusUnprocessableEntity})
			return
		}

		user, err := daos.CreateUser(db, input.Username, input.Name, input.Surname, input.Password, models.Role(input.Role))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users — Admin only; optional ?role= filter.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.Query("role"); role != "" {
			users, err := daos.GetUsersByRole(db, models.Role(role))
			if err != nil {
				httperr.Abort(c, err)
				return
			}
			c.JSON(http.StatusOK, users)
			return
		}

		users, err := daos.GetUsers(db)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/:username — self, or any user for Admins.
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("username")
		if target != middleware.Username(c) && middleware.CallerRole(c) != models.RoleAdmin {
			httperr.Abort(c, fmt.Errorf("%w: cannot read other users", daos.ErrUnauthorizedUser))
			return
		}

		user, err := daos.GetUserByUsername(db, target)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /users/:username — users update their own info.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("username")
		if target != middleware.Username(c) {
			httperr.Abort(c, fmt.Errorf("%w: cannot update other users", daos.ErrUnauthorizedUser))
			return
		}

		var input updateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error(), "status": http.StatusUnprocessableEntity})
			return
		}

		user, err := daos.UpdateUserInfo(db, target, input.Name, input.Surname, input.Address, input.Birthdate)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users/:username — self-delete, or Admins deleting non-Admin users.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("username")
		caller := middleware.Username(c)

		if target != caller {
			if middleware.CallerRole(c) != models.RoleAdmin {
				httperr.Abort(c, fmt.Errorf("%w: cannot delete other users", daos.ErrUnauthorizedUser))
				return
			}
			targetUser, err := daos.GetUserByUsername(db, target)
			if err != nil {
				httperr.Abort(c, err)
				return
			}
			if targetUser.Role == models.RoleAdmin {
				httperr.Abort(c, fmt.Errorf("%w: admins cannot delete other admins", daos.ErrUnauthorizedUser))
				return
			}
		}

		if err := daos.DeleteUser(db, target); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// DELETE /users — Admin only, removes every non-Admin account.
func DeleteAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteAllNonAdminUsers(db); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All non-admin users deleted"})
	}
}
