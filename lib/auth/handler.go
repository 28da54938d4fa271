package authhandler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"solventek-backend/config"
	"solventek-backend/db"
	userstore "solventek-backend/lib/users/store"
	authutils "solventek-backend/lib/utils/auth-utils"
	"solventek-backend/models"
	authapimodels "solventek-backend/models/api/auth"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Login(email, password string) (response authapimodels.LoginResponse, err error)
	Refresh(refreshToken string) (response authapimodels.LoginResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.LoginResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.LoginResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.LoginResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	return i.issueTokens(*user)
}

func (i impl) Refresh(refreshToken string) (response authapimodels.LoginResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи (%v)", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.LoginResponse{}, errors.New("refresh токен не прошел проверку")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.LoginResponse{}, errors.New("refresh токен не прошел проверку")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	if user == nil {
		return authapimodels.LoginResponse{}, errors.New("пользователь не найден")
	}
	return i.issueTokens(*user)
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.LoginResponse, error) {
	logger := log.WithField("user_id", user.ID)
	if !user.IsActive {
		return authapimodels.LoginResponse{}, errors.New("учетная запись заблокирована")
	}
	orgName := ""
	orgType := models.OrgTypeSolventek
	if user.Organization != nil {
		orgName = user.Organization.Name
		orgType = user.Organization.OrgType
		// пользователи непроверенной или отключенной организации не входят
		if orgType == models.OrgTypeVendor &&
			user.Organization.Status != models.OrganizationStatusApproved &&
			user.Organization.Status != models.OrganizationStatusActive {
			return authapimodels.LoginResponse{}, errors.New("организация не активна")
		}
	}
	permissions := user.GetPermissions()
	if len(permissions) == 0 {
		permissions = models.RoleFlowPermissions[user.Role]
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), orgName, orgType, user.Role, permissions)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.LoginResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.LoginResponse{}, err
	}
	return authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
