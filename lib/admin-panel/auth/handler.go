package adminpanelauthhandler

import (
	"crypto/subtle"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	authutils "site-backend/lib/utils/auth-utils"
	adminapimodels "site-backend/models/api/admin"
)

var ErrBadCredentials = errors.New("неверный логин или пароль")

type Provider interface {
	Login(login, password string) (response adminapimodels.JWTResponse, err error)
}

var Instance Provider

type Config struct {
	Login        string
	PasswordHash string
	JWTSecret    string
	JWTExpire    time.Duration
}

func NewHandler(cfg Config) {
	Instance = NewInstance(cfg)
}

func NewInstance(cfg Config) Provider {
	return impl{cfg: cfg}
}

type impl struct {
	cfg Config
}

func (i impl) Login(login, password string) (response adminapimodels.JWTResponse, err error) {
	logger := log.WithField("login", login)
	if i.cfg.Login == "" || i.cfg.PasswordHash == "" {
		logger.Warn("вход в админку отключён, не настроена учётная запись")
		return adminapimodels.JWTResponse{}, ErrBadCredentials
	}
	if subtle.ConstantTimeCompare([]byte(login), []byte(i.cfg.Login)) != 1 {
		logger.Debug("пользователь с таким логином не найден")
		return adminapimodels.JWTResponse{}, ErrBadCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(i.cfg.PasswordHash), []byte(password)); err != nil {
		logger.Debug("пользователь не прошел проверку пароля")
		return adminapimodels.JWTResponse{}, ErrBadCredentials
	}
	token, err := authutils.GetToken(login, i.cfg.JWTSecret, i.cfg.JWTExpire)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return adminapimodels.JWTResponse{}, err
	}
	logger.Info("вход в админку")
	return adminapimodels.JWTResponse{
		Token: token,
	}, nil
}
