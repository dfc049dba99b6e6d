package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/core/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	recorder *notify.Recorder
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.recorder = &notify.Recorder{}
	suite.service = services.NewUserService(suite.mockRepo, roles.Default(),
		services.WithNotifier(suite.recorder),
		services.WithClock(fixedClock),
	)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestListUsers_JoinsRolesAndDefaultsToViewer() {
	profiles := []domain.User{
		{UserID: "u1", Name: "Ada", Email: "ada@example.com", Status: domain.UserActive},
		{UserID: "u2", Name: "Grace", Email: "grace@example.com", Status: domain.UserActive},
	}
	suite.mockRepo.On("FindProfiles", mock.Anything, services.UserListLimit).Return(profiles, nil).Once()
	suite.mockRepo.On("FindRoleAssignments", mock.Anything, []string{"u1", "u2"}).
		Return(map[string]domain.RoleType{"u1": domain.RoleAdmin}, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal(domain.RoleAdmin, users[0].Role)
	suite.Equal(domain.RoleViewer, users[1].Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_NoProfilesSkipsRoleQuery() {
	suite.mockRepo.On("FindProfiles", mock.Anything, services.UserListLimit).Return([]domain.User{}, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(users)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRoleAssignments", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_Upserts() {
	suite.mockRepo.On("UpsertUserRole", mock.Anything, "u1", domain.RoleAccountant, fixedNow).Return(nil).Once()

	err := suite.service.UpdateUserRole(suite.ctx, "u1", domain.RoleAccountant)

	suite.Require().NoError(err)
	n, _ := suite.recorder.Last()
	suite.Equal("User role updated successfully", n.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_UnknownRole() {
	err := suite.service.UpdateUserRole(suite.ctx, "u1", domain.RoleType("owner"))

	suite.ErrorIs(err, apperrors.ErrInvalidRole)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_InvalidatesList() {
	suite.mockRepo.On("FindProfiles", mock.Anything, services.UserListLimit).Return([]domain.User{{UserID: "u1"}}, nil).Twice()
	suite.mockRepo.On("FindRoleAssignments", mock.Anything, []string{"u1"}).Return(map[string]domain.RoleType{}, nil).Twice()
	suite.mockRepo.On("UpsertUserRole", mock.Anything, "u1", domain.RoleHR, fixedNow).Return(nil).Once()

	_, err := suite.service.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.UpdateUserRole(suite.ctx, "u1", domain.RoleHR))
	_, err = suite.service.ListUsers(suite.ctx)
	suite.Require().NoError(err)

	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindProfiles", 2)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	var saved domain.User
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	created, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
	})

	suite.Require().NoError(err)
	suite.Equal("ada@example.com", created.Email)
	suite.Equal(domain.RoleViewer, created.Role)
	suite.True(utils.CheckPasswordHash("correct-horse", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_ShortPassword() {
	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Ada", Email: "a@b.c", Password: "short"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestBulkUpdateUserStatus() {
	suite.mockRepo.On("UpdateUsersStatus", mock.Anything, []string{"u1", "u2"}, domain.UserSuspended, fixedNow).Return(int64(2), nil).Once()

	n, err := suite.service.BulkUpdateUserStatus(suite.ctx, []string{"u1", "u2"}, domain.UserSuspended)

	suite.Require().NoError(err)
	suite.Equal(int64(2), n)
	last, _ := suite.recorder.Last()
	suite.Equal("2 user(s) updated successfully", last.Title)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
