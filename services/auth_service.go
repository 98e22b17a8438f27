package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/configs"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Cfg  *configs.Config
	Repo *repository.EmployeeRepository
}

func NewAuthService(cfg *configs.Config, repo *repository.EmployeeRepository) *AuthService {
	return &AuthService{Cfg: cfg, Repo: repo}
}

type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token    string           `json:"token"`
	Role     string           `json:"role"`
	Employee *entity.Employee `json:"employee"`
}

// Login checks the employee's own password and issues a JWT.
func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	e, err := s.Repo.FindByName(req.Name)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if e.Password == "" {
		return nil, errors.New("account has no password set")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	token, err := utils.GenerateToken(e.EmployeeID, e.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, Role: e.Role, Employee: e}, nil
}

type VerifyRoleReq struct {
	Role     string `json:"role" binding:"required,oneof=cashier manager"`
	Password string `json:"password" binding:"required"`
}

// VerifyRole is the station gate: one shared password per role, configured
// by env.
func (s *AuthService) VerifyRole(req *VerifyRoleReq) error {
	var want string
	switch req.Role {
	case entity.RoleCashier:
		want = s.Cfg.CashierPassword
	case entity.RoleManager:
		want = s.Cfg.ManagerPassword
	default:
		return errors.New("invalid role selected")
	}
	if want == "" || req.Password != want {
		return errors.New("invalid password for the selected role")
	}
	return nil
}
