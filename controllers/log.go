package controllers

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: 10 * time.Second,
}

func initLogFile(logPath string) error {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		file, err := os.Create(logPath)
		if err != nil {
			return err
		}
		file.Close()
	}
	return nil
}

// GetLogs godoc
// @Summary      Read recent application log lines
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        lines query int false "Number of lines to return (default 100)" minimum(1) maximum(1000)
// @Success      200  {object}  utils.Envelope
// @Failure      500  {object}  utils.Envelope
// @Router       /admin/logs [get]
func GetLogs(c *gin.Context) {
	lines := 100
	if lineParam := c.Query("lines"); lineParam != "" {
		if parsed, err := strconv.Atoi(lineParam); err == nil && parsed > 0 && parsed <= 1000 {
			lines = parsed
		}
	}

	logPath := filepath.Join("logs", "app.log")
	if err := initLogFile(logPath); err != nil {
		utils.InternalError(c, "log file init failed", err)
		return
	}

	file, err := os.Open(logPath)
	if err != nil {
		utils.InternalError(c, "log file open failed", err)
		return
	}
	defer file.Close()

	var logLines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		logLines = append(logLines, scanner.Text())
		if len(logLines) > lines {
			logLines = logLines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		utils.InternalError(c, "log file read failed", err)
		return
	}

	utils.Success(c, "SUCCESS_MESSAGE", logLines)
}

// WatchLogs godoc
// @Summary      Stream log lines over WebSocket
// @Description  Authenticates with an access token passed as a query parameter
// @Tags         admin
// @Security     Bearer
// @Router       /admin/logs/watch [get]
func WatchLogs(c *gin.Context) {
	utils.LogInfo(fmt.Sprintf("websocket connection attempt from %s", c.ClientIP()))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.LogError("websocket upgrade failed", err)
		return
	}

	// browsers cannot set headers on websocket requests, so the token rides
	// the query string
	token := c.Query("token")
	if token == "" {
		conn.WriteJSON(map[string]interface{}{
			"type":    "auth_error",
			"message": "missing token",
		})
		conn.Close()
		return
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		conn.WriteJSON(map[string]interface{}{
			"type":    "auth_error",
			"message": "invalid token",
		})
		conn.Close()
		return
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		conn.WriteJSON(map[string]interface{}{
			"type":    "auth_error",
			"message": "invalid token claims",
		})
		conn.Close()
		return
	}

	role, _ := claims["role"].(string)
	if role != models.RoleAdmin {
		conn.WriteJSON(map[string]interface{}{
			"type":    "auth_error",
			"message": "insufficient permissions",
		})
		conn.Close()
		return
	}

	conn.WriteJSON(map[string]interface{}{
		"type":    "auth_success",
		"message": "authenticated",
	})

	utils.AddClient(conn)
	utils.LogInfo(fmt.Sprintf("websocket connection established from %s", c.ClientIP()))

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	defer func() {
		utils.RemoveClient(conn)
		conn.Close()
		utils.LogInfo(fmt.Sprintf("websocket connection closed from %s", c.ClientIP()))
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.LogError("websocket read error", err)
			}
			break
		}
	}
}
