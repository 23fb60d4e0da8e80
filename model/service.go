package model

import (
	"fmt"

	"github.com/Ngone6325/gofac/v2"
)

// IUserRepo user repository
type IUserRepo interface {
	GetUserID() int64
	GetRepoUUID() string // address of the repo instance
}

// IHealthChecker is implemented by services that can report readiness.
type IHealthChecker interface {
	Healthy() bool
}

// UserRepo implements IUserRepo and IHealthChecker.
type UserRepo struct {
	DBConfig string
	UUID     string
}

func NewUserRepo() *UserRepo {
	repo := &UserRepo{
		DBConfig: "mysql:127.0.0.1:3306/gofac?charset=utf8",
	}
	repo.UUID = fmt.Sprintf("%p", repo)
	return repo
}

func (r *UserRepo) GetUserID() int64    { return 10086 }
func (r *UserRepo) GetRepoUUID() string { return r.UUID }
func (r *UserRepo) Healthy() bool       { return r.DBConfig != "" }

// IUserService user service
type IUserService interface {
	GetUserName() string
	GetRepoUUID() string
}

type UserService struct {
	Repo IUserRepo
	UUID string
}

func NewUserService(repo IUserRepo) *UserService {
	svc := &UserService{Repo: repo}
	svc.UUID = fmt.Sprintf("%p", svc)
	return svc
}

func (s *UserService) GetUserName() string { return fmt.Sprintf("user_%d", s.Repo.GetUserID()) }
func (s *UserService) GetRepoUUID() string { return s.Repo.GetRepoUUID() }

// IUserLog per-request user log
type IUserLog interface {
	LogUserID() string
	GetLogUUID() string
}

type UserLog struct {
	Repo IUserRepo
	UUID string
}

func NewUserLog(repo IUserRepo) *UserLog {
	log := &UserLog{Repo: repo}
	log.UUID = fmt.Sprintf("%p", log)
	return log
}

func (l *UserLog) LogUserID() string  { return fmt.Sprintf("user_log: user_id=%d", l.Repo.GetUserID()) }
func (l *UserLog) GetLogUUID() string { return l.UUID }

// Catalog exposes the model's constructors and interfaces to manifests.
func Catalog() gofac.Catalog {
	return gofac.Catalog{
		Constructors: map[string]any{
			"userRepo":    NewUserRepo,
			"userService": NewUserService,
			"userLog":     NewUserLog,
		},
		Interfaces: map[string]any{
			"IUserRepo":      (*IUserRepo)(nil),
			"IHealthChecker": (*IHealthChecker)(nil),
			"IUserService":   (*IUserService)(nil),
			"IUserLog":       (*IUserLog)(nil),
		},
	}
}
