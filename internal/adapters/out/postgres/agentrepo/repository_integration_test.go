package agentrepo_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/agentrepo"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AgentDirectoryIntegrationTestSuite verifies the read-only directory lookup
// that gates every dispatch operation on a real agent row.
type AgentDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *agentrepo.GormAgentDirectory
}

func (suite *AgentDirectoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&agentrepo.AgentDTO{}))
}

func (suite *AgentDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE agents").Error)

	suite.directory = agentrepo.NewGormAgentDirectory(suite.db)
}

func (suite *AgentDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AgentDirectoryIntegrationTestSuite) TestGetDeliveryAgent_ReturnsReadModel() {
	id := suite.seedAgent("Maria Lindgren", "delivery_agent", true)

	agent, err := suite.directory.GetDeliveryAgent(context.Background(), id)
	suite.Require().NoError(err)

	suite.True(agent.ID.IsEqual(id))
	suite.Equal("Maria Lindgren", agent.Name)
	suite.True(agent.Active)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestGetDeliveryAgent_InactiveAgent_StillReturned() {
	id := suite.seedAgent("Jonas Berg", "delivery_agent", false)

	agent, err := suite.directory.GetDeliveryAgent(context.Background(), id)
	suite.Require().NoError(err)

	suite.False(agent.Active)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestGetDeliveryAgent_WrongRole_ReturnsNotFound() {
	id := suite.seedAgent("Ana Costa", "pharmacist", true)

	_, err := suite.directory.GetDeliveryAgent(context.Background(), id)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestGetDeliveryAgent_Unknown_ReturnsNotFound() {
	_, err := suite.directory.GetDeliveryAgent(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentDirectoryIntegrationTestSuite) seedAgent(name, role string, active bool) kernel.UUID {
	id := kernel.NewUUID()
	dto := agentrepo.AgentDTO{ID: id.Bytes(), Name: name, Role: role, Active: active}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func TestAgentDirectoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(AgentDirectoryIntegrationTestSuite))
}
