package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger     *log.Logger
	mu         sync.Mutex
	clients    = make(map[*websocket.Conn]bool)
	clientsMux sync.Mutex
)

// LogPath is where the current log file lives.
const LogPath = "logs/app.log"

// InitLogger sets up the application logger: stdout plus a size-rotated file.
func InitLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(LogPath), 0755); err != nil {
		return err
	}

	rotator := &lumberjack.Logger{
		Filename:   LogPath,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	mw := io.MultiWriter(os.Stdout, rotator)
	logger = log.New(mw, "", 0)
	return nil
}

// LogError writes an error line and broadcasts it to live log watchers.
func LogError(message string, err error) {
	if logger == nil {
		InitLogger()
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] [ERROR] %s", timestamp, message)
	if err != nil {
		line += fmt.Sprintf(": %v", err)
	}
	logger.Println(line)
	BroadcastLog(line)
}

// LogInfo writes an info line and broadcasts it to live log watchers.
func LogInfo(message string) {
	if logger == nil {
		InitLogger()
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] [INFO] %s", timestamp, message)
	logger.Println(line)
	BroadcastLog(line)
}

// BroadcastLog fans a log line out to every connected websocket client.
func BroadcastLog(message string) {
	clientsMux.Lock()
	defer clientsMux.Unlock()

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}

// AddClient registers a websocket log watcher.
func AddClient(conn *websocket.Conn) {
	clientsMux.Lock()
	clients[conn] = true
	clientsMux.Unlock()
}

// RemoveClient unregisters a websocket log watcher.
func RemoveClient(conn *websocket.Conn) {
	clientsMux.Lock()
	delete(clients, conn)
	clientsMux.Unlock()
}
