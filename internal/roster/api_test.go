package roster_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/realtime"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/roster"
	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for roster handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *realtime.Hub) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	hub := realtime.NewHub()
	rosterRepository := roster.NewRosterRepository()
	rosterService := roster.NewRosterService(db, rosterRepository, hub)
	rosterHandler := roster.NewRosterHandler(rosterService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/org/units/:id/members", rosterHandler.ListMembers)
	router.POST("/api/v1/org/units/:id/members", rosterHandler.CreateMember)
	router.PUT("/api/v1/org/units/:id/members/:memberId", rosterHandler.UpdateMember)
	router.DELETE("/api/v1/org/units/:id/members/:memberId", rosterHandler.RemoveMember)
	router.GET("/api/v1/members/search", rosterHandler.Search)

	return router, db, hub
}

func seedOrgUnit(t *testing.T, db *gorm.DB, name, unitType string) string {
	t.Helper()

	unit := &model.OrgUnit{Name: name, Type: unitType}
	require.NoError(t, db.Create(unit).Error)
	return unit.ID
}

func createMember(t *testing.T, router *gin.Engine, unitID string, body roster.CreateMemberRequest) model.Member {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members", unitID),
		Body:   body,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var member model.Member
	testutil.ParseResponse(t, recorder, &member)
	require.NotEmpty(t, member.ID)
	return member
}

func TestCreateMember_CreatesMemberAndMembershipTogether(t *testing.T) {
	// Given: A choir to register into
	router, db, _ := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	// When: Register a new member in the unit
	member := createMember(t, router, unitID, roster.CreateMemberRequest{
		Name:     "김은혜",
		Phone:    "010-1234-5678",
		Position: "소프라노 파트장",
	})

	// Then: Both the member row and its active membership exist
	var storedMember model.Member
	require.NoError(t, db.Where("id = ?", member.ID).First(&storedMember).Error)
	assert.Equal(t, "김은혜", storedMember.Name)
	assert.Equal(t, model.RoleMember, storedMember.Role)

	var membership model.Membership
	require.NoError(t, db.Where("member_id = ? AND org_unit_id = ?", member.ID, unitID).First(&membership).Error)
	assert.Equal(t, "소프라노 파트장", membership.Position)
	assert.True(t, membership.IsActive)
}

func TestCreateMember_PublishesInsertEvent(t *testing.T) {
	// Given: A subscriber on the unit's event stream
	router, db, hub := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	sub := hub.Subscribe(unitID)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	// When
	member := createMember(t, router, unitID, roster.CreateMemberRequest{Name: "김은혜"})

	// Then: The insert is announced on the unit's channel
	select {
	case event := <-sub.C:
		assert.Equal(t, realtime.OpInsert, event.Op)
		assert.Equal(t, unitID, event.OrgUnitID)
		assert.Equal(t, member.ID, event.MemberID)
	default:
		t.Fatal("구성원 등록 이벤트가 발행되지 않았습니다")
	}
}

func TestCreateMember_ValidationError_MissingName(t *testing.T) {
	// Given: Setup test environment
	router, db, _ := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	// When: Register without a name
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members", unitID),
		Body:   map[string]string{"position": "알토"},
	})

	// Then: Verify validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestListMembers_SortedByKoreanNameWithParsedPositions(t *testing.T) {
	// Given: Three members registered out of name order
	router, db, _ := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	createMember(t, router, unitID, roster.CreateMemberRequest{Name: "박믿음", Position: "테너"})
	createMember(t, router, unitID, roster.CreateMemberRequest{Name: "김은혜", Position: "소프라노 파트장"})
	createMember(t, router, unitID, roster.CreateMemberRequest{Name: "이소망", Position: "지휘자"})

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members", unitID),
	})

	// Then: Rows come back in Korean collation order with derived {part, job}
	require.Equal(t, http.StatusOK, recorder.Code)

	var response roster.MemberListResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Equal(t, 3, response.Total)

	assert.Equal(t, "김은혜", response.Members[0].Name)
	assert.Equal(t, "박믿음", response.Members[1].Name)
	assert.Equal(t, "이소망", response.Members[2].Name)

	assert.Equal(t, "소프라노", response.Members[0].Parsed.Part)
	assert.Equal(t, "파트장", response.Members[0].Parsed.Job)
	assert.Equal(t, "테너", response.Members[1].Parsed.Part)
	assert.Empty(t, response.Members[1].Parsed.Job)
	assert.Empty(t, response.Members[2].Parsed.Part)
	assert.Equal(t, "지휘자", response.Members[2].Parsed.Job)
}

func TestListMembers_ExcludesInactiveMemberships(t *testing.T) {
	// Given: One active and one deactivated membership in the same unit
	router, db, _ := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	active := createMember(t, router, unitID, roster.CreateMemberRequest{Name: "김은혜"})
	inactive := createMember(t, router, unitID, roster.CreateMemberRequest{Name: "박믿음"})
	require.NoError(t, db.Model(&model.Membership{}).
		Where("member_id = ?", inactive.ID).
		Update("is_active", false).Error)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members", unitID),
	})

	// Then: Only the active member shows up
	require.Equal(t, http.StatusOK, recorder.Code)

	var response roster.MemberListResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Equal(t, 1, response.Total)
	assert.Equal(t, active.ID, response.Members[0].ID)
}

func TestUpdateMember_ChangesPositionAndPublishes(t *testing.T) {
	// Given: An existing roster member
	router, db, hub := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)
	member := createMember(t, router, unitID, roster.CreateMemberRequest{Name: "김은혜", Position: "소프라노"})

	sub := hub.Subscribe(unitID)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	// When: Promote to part leader
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members/%s", unitID, member.ID),
		Body: roster.UpdateMemberRequest{
			Name:     "김은혜",
			Position: "소프라노 파트장",
		},
	})

	// Then: The membership row changed and an update event went out
	require.Equal(t, http.StatusOK, recorder.Code)

	var membership model.Membership
	require.NoError(t, db.Where("member_id = ? AND org_unit_id = ?", member.ID, unitID).First(&membership).Error)
	assert.Equal(t, "소프라노 파트장", membership.Position)

	select {
	case event := <-sub.C:
		assert.Equal(t, realtime.OpUpdate, event.Op)
		assert.Equal(t, member.ID, event.MemberID)
	default:
		t.Fatal("구성원 수정 이벤트가 발행되지 않았습니다")
	}
}

func TestUpdateMember_NotInUnit(t *testing.T) {
	// Given: A member registered in a different unit
	router, db, _ := setupTestEnvironment(t)
	choirID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)
	otherID := seedOrgUnit(t, db, "미디어팀", model.OrgTypeTeam)
	member := createMember(t, router, choirID, roster.CreateMemberRequest{Name: "김은혜"})

	// When: Update them through the wrong unit
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members/%s", otherID, member.ID),
		Body:   roster.UpdateMemberRequest{Name: "김은혜"},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ROSTER-002", errorResponse.Code)
}

func TestRemoveMember_DeletesMembershipOnly(t *testing.T) {
	// Given: A member registered in two units
	router, db, hub := setupTestEnvironment(t)
	choirID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)
	teamID := seedOrgUnit(t, db, "미디어팀", model.OrgTypeTeam)

	member := createMember(t, router, choirID, roster.CreateMemberRequest{Name: "김은혜"})
	require.NoError(t, db.Create(&model.Membership{
		MemberID:  member.ID,
		OrgUnitID: teamID,
		IsActive:  true,
	}).Error)

	sub := hub.Subscribe(choirID)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	// When: Remove them from the choir only
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members/%s", choirID, member.ID),
	})

	// Then: The member row and the other membership survive
	require.Equal(t, http.StatusOK, recorder.Code)

	var memberCount int64
	require.NoError(t, db.Model(&model.Member{}).Where("id = ?", member.ID).Count(&memberCount).Error)
	assert.Equal(t, int64(1), memberCount)

	var choirCount int64
	require.NoError(t, db.Model(&model.Membership{}).
		Where("member_id = ? AND org_unit_id = ?", member.ID, choirID).
		Count(&choirCount).Error)
	assert.Equal(t, int64(0), choirCount)

	var teamCount int64
	require.NoError(t, db.Model(&model.Membership{}).
		Where("member_id = ? AND org_unit_id = ?", member.ID, teamID).
		Count(&teamCount).Error)
	assert.Equal(t, int64(1), teamCount)

	select {
	case event := <-sub.C:
		assert.Equal(t, realtime.OpDelete, event.Op)
		assert.Equal(t, member.ID, event.MemberID)
	default:
		t.Fatal("명단 삭제 이벤트가 발행되지 않았습니다")
	}
}

func TestRemoveMember_MissingMembership(t *testing.T) {
	// Given: Setup test environment
	router, db, _ := setupTestEnvironment(t)
	unitID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)

	// When: Remove someone who was never registered
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/org/units/%s/members/no-such-member", unitID),
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ROSTER-002", errorResponse.Code)
}

func TestSearch_ReturnsHitsWithAffiliations(t *testing.T) {
	// Given: A member belonging to two units
	router, db, _ := setupTestEnvironment(t)
	choirID := seedOrgUnit(t, db, "시온찬양대", model.OrgTypeChoir)
	teamID := seedOrgUnit(t, db, "미디어팀", model.OrgTypeTeam)

	member := createMember(t, router, choirID, roster.CreateMemberRequest{Name: "김은혜", Position: "알토"})
	require.NoError(t, db.Create(&model.Membership{
		MemberID:  member.ID,
		OrgUnitID: teamID,
		Position:  "부장",
		IsActive:  true,
	}).Error)
	createMember(t, router, choirID, roster.CreateMemberRequest{Name: "박믿음"})

	// When: Search by a name fragment
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/search?q=은혜",
	})

	// Then: One hit with both affiliations resolved to unit names
	require.Equal(t, http.StatusOK, recorder.Code)

	var response roster.SearchResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Members, 1)

	hit := response.Members[0]
	assert.Equal(t, member.ID, hit.ID)
	require.Len(t, hit.Affiliations, 2)

	names := []string{hit.Affiliations[0].OrgUnitName, hit.Affiliations[1].OrgUnitName}
	assert.Contains(t, names, "시온찬양대")
	assert.Contains(t, names, "미디어팀")
}

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	// Given: Setup test environment
	router, _, _ := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/search",
	})

	// Then: 200 with an empty result, no DB roundtrip needed
	require.Equal(t, http.StatusOK, recorder.Code)

	var response roster.SearchResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Empty(t, response.Members)
}
