package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"docchat/model"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
}

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the user and issues a token so the UI can sign the new
// user in immediately. The unique index on email is the duplicate check,
// so two concurrent registrations cannot both pass.
func (service *UserService) Register(user *User) (string, error) {

	// 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("internal server error")
	}

	// 存储用户信息
	newUser := &model.User{
		Email:    user.Email,
		Password: string(hashedPassword),
	}
	if err := model.CreateUser(newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUserExists
		}
		return "", errors.New("internal server error")
	}

	ts := &TokenService{}
	token, err := ts.CreateToken(newUser.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return "", errors.New("failed to generate token")
	}

	return token.AccessToken, nil
}

func (service *UserService) Login(user *User) (string, error) {
	// 验证邮箱和密码
	registeredUser, err := model.GetUserByEmail(user.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(registeredUser.Password), []byte(user.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// 生成会话令牌
	ts := &TokenService{}
	token, err := ts.CreateToken(registeredUser.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return "", errors.New("failed to generate token")
	}

	return token.AccessToken, nil
}
