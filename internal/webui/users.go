package webui

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stocktrack/internal/domain"
	"stocktrack/internal/webserver"
)

// registerUserRoutes registers the settings page and user CRUD routes
func registerUserRoutes(ws *webserver.WebServer) {
	ws.GET("/settings", settingsPage)
	ws.GET("/users/add", addUserForm)
	ws.POST("/users/add", addUser)
	ws.GET("/users/edit/:id", editUserForm)
	ws.POST("/users/edit/:id", editUser)
	ws.POST("/users/delete/:id", deleteUser)
}

// settingsPage lists accounts; the password column never leaves the
// database.
func settingsPage(c echo.Context) error {
	var users []domain.User
	err := GetDB(c).Select("id, username, role, email").Order("id").Find(&users).Error
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "settings.html", echo.Map{
		"users":   users,
		"flashes": webserver.TakeFlashes(c),
	})
}

func addUserForm(c echo.Context) error {
	return c.Render(http.StatusOK, "user_form.html", echo.Map{
		"title":         "Add User",
		"action":        "/users/add",
		"user":          &domain.User{},
		"with_password": true,
		"flashes":       webserver.TakeFlashes(c),
	})
}

func addUser(c echo.Context) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(c.FormValue("password")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := domain.User{
		Username: c.FormValue("username"),
		Password: string(hashed),
		Role:     c.FormValue("role"),
		Email:    c.FormValue("email"),
	}
	if err := GetDB(c).Create(&user).Error; err != nil {
		return err
	}

	logOperation(c, "user_add", fmt.Sprintf("user %d created", user.ID))
	webserver.SetFlash(c, "success", "User added successfully!")
	return redirect(c, "/settings")
}

func editUserForm(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	var user domain.User
	if err := GetDB(c).Where("id = ?", id).First(&user).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		webserver.SetFlash(c, "danger", "User not found.")
		return redirect(c, "/settings")
	} else if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "user_form.html", echo.Map{
		"title":         "Edit User",
		"action":        fmt.Sprintf("/users/edit/%d", id),
		"user":          &user,
		"with_password": false,
		"flashes":       webserver.TakeFlashes(c),
	})
}

// editUser overwrites username, role and email. The password is never
// touched on this path.
func editUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	var user domain.User
	if err := GetDB(c).Where("id = ?", id).First(&user).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		webserver.SetFlash(c, "danger", "User not found.")
		return redirect(c, "/settings")
	} else if err != nil {
		return err
	}

	err = GetDB(c).Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":   c.FormValue("username"),
			"role":       c.FormValue("role"),
			"email":      c.FormValue("email"),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return err
	}

	logOperation(c, "user_edit", fmt.Sprintf("user %d updated", id))
	webserver.SetFlash(c, "success", "User updated successfully!")
	return redirect(c, "/settings")
}

func deleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.User{}).Error; err != nil {
		return err
	}
	logOperation(c, "user_delete", fmt.Sprintf("user %d deleted", id))
	webserver.SetFlash(c, "success", "User deleted successfully!")
	return redirect(c, "/settings")
}
