package botnotify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var client = &http.Client{Timeout: 10 * time.Second}

// ErrorEvent - уведомление в бот об ошибке обработки запроса
type ErrorEvent struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

func SendError(addr string, event ErrorEvent, logger *logrus.Entry) {
	if err := send(addr, event); err != nil {
		logger.WithError(err).Warn("ошибка отправки уведомления об ошибке")
	}
}

func send(addr string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации уведомления")
	}
	resp, err := client.Post(addr, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("бот вернул код %d", resp.StatusCode)
	}
	return nil
}
