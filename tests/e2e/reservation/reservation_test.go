//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/dto/request"
	"parkhub/internal/handler/dto/response"
	"parkhub/tests/common/authtest"
	"parkhub/tests/common/dbtest"
	"parkhub/tests/common/httptest"
	"parkhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite

	driverToken string
	driverID    uuid.UUID
	ownerID     uuid.UUID
	lotID       uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()

	// テスト用のオーナー・駐車場・ドライバーを作成
	s.ownerID = dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleOwner))
	s.lotID = dbtest.CreateTestLot(t, s.DB, s.ownerID, "Central Garage", 5)
	s.driverID = dbtest.CreateTestUser(t, s.DB, "driver@example.com", string(user.RoleDriver))
	s.driverToken = authtest.LoginUser(t, s.Router, "driver@example.com", "password123")
}

func futureSlot(offset, duration time.Duration) (int64, int64) {
	start := time.Now().Add(offset).Truncate(time.Minute)
	return start.Unix(), start.Add(duration).Unix()
}

func (s *reservationSuite) TestCreateReservation() {
	s.Run("正常な予約作成", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, 2*time.Hour)
		reqBody := request.CreateReservationRequest{
			LotID:     s.lotID,
			StartTime: start,
			EndTime:   end,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.driverToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, s.driverID, res.UserID)
		require.Equal(t, s.lotID, res.LotID)
		require.Equal(t, "active", res.Status)
		// 2時間 × キャッチオール料金 2.0/h
		require.InDelta(t, 4.0, res.EstimatedPrice, 1e-9)

		// DBに永続化されていること
		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM reservations WHERE id = $1", res.ID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "active", status)
	})

	s.Run("予約が空き状況に反映される", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, 2*time.Hour)
		reqBody := request.CreateReservationRequest{
			LotID:     s.lotID,
			StartTime: start,
			EndTime:   end,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.driverToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 予約時間帯の空き状況を確認
		availabilityURL := fmt.Sprintf("/api/parkings/%s/availability?at=%d", s.lotID, start)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var availability response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &availability))
		require.Equal(t, 5, availability.TotalSpots)
		require.Equal(t, 1, availability.OccupiedSpots)
		require.Equal(t, 4, availability.AvailableSpots)
	})

	s.Run("満車の場合は拒否される", func() {
		t := s.T()

		smallLotID := dbtest.CreateTestLot(t, s.DB, s.ownerID, "Tiny Lot", 1)
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleDriver))

		start, end := futureSlot(time.Hour, 2*time.Hour)
		dbtest.CreateTestReservation(t, s.DB, otherID, smallLotID,
			time.Unix(start, 0), time.Unix(end, 0))

		reqBody := request.CreateReservationRequest{
			LotID:     smallLotID,
			StartTime: start,
			EndTime:   end,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.driverToken)
		require.Equal(t, http.StatusConflict, w.Code, "満車の駐車場への予約は拒否されるべき")
	})

	s.Run("不正な時間帯は拒否される", func() {
		t := s.T()

		start, _ := futureSlot(time.Hour, 2*time.Hour)

		testCases := []struct {
			name  string
			start int64
			end   int64
		}{
			{name: "終了が開始より前", start: start, end: start - 3600},
			{name: "開始と終了が同じ", start: start, end: start},
			{name: "48時間を超える", start: start, end: start + int64((49 * time.Hour).Seconds())},
		}

		for _, tc := range testCases {
			reqBody := request.CreateReservationRequest{
				LotID:     s.lotID,
				StartTime: tc.start,
				EndTime:   tc.end,
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.driverToken)
			require.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		}
	})

	s.Run("存在しない駐車場", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, 2*time.Hour)
		reqBody := request.CreateReservationRequest{
			LotID:     uuid.New(),
			StartTime: start,
			EndTime:   end,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.driverToken)
		require.Equal(t, http.StatusNotFound, w.Code, "存在しない駐車場への予約は404になるべき")
	})

	s.Run("認証なしは拒否される", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, 2*time.Hour)
		reqBody := request.CreateReservationRequest{
			LotID:     s.lotID,
			StartTime: start,
			EndTime:   end,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *reservationSuite) TestGetReservation() {
	s.Run("自分の予約を取得できる", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, reservationID, res.ID)
		require.Equal(t, "Central Garage", res.LotName)
	})

	s.Run("他人の予約は閲覧できない", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleDriver))
		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, otherID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusForbidden, w.Code, "他人の予約は403になるべき")
	})

	s.Run("管理者は他人の予約を閲覧できる", func() {
		t := s.T()

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+reservationID.String(), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("存在しない予約", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+uuid.NewString(), nil, s.driverToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *reservationSuite) TestGetUserReservations() {
	s.Run("自分の予約一覧を取得できる", func() {
		t := s.T()

		start1, end1 := futureSlot(time.Hour, time.Hour)
		start2, end2 := futureSlot(4*time.Hour, time.Hour)
		dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID, time.Unix(start1, 0), time.Unix(end1, 0))
		dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID, time.Unix(start2, 0), time.Unix(end2, 0))

		// 他人の予約は一覧に混ざらないこと
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleDriver))
		dbtest.CreateTestReservation(t, s.DB, otherID, s.lotID, time.Unix(start1, 0), time.Unix(end1, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.driverToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res, 2)
		for _, r := range res {
			require.Equal(t, s.driverID, r.UserID)
		}
	})

	s.Run("予約がない場合は空配列", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.driverToken)
		require.Equal(t, http.StatusOK, w.Code)

		var res []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Empty(t, res)
	})
}

func (s *reservationSuite) TestCancelReservation() {
	s.Run("自分の予約をキャンセルできる", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "cancelled", status)
	})

	s.Run("二重キャンセルは拒否される", func() {
		t := s.T()

		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, s.driverID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusConflict, w.Code, "キャンセル済み予約の再キャンセルは409になるべき")
	})

	s.Run("他人の予約はキャンセルできない", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleDriver))
		start, end := futureSlot(time.Hour, time.Hour)
		reservationID := dbtest.CreateTestReservation(t, s.DB, otherID, s.lotID,
			time.Unix(start, 0), time.Unix(end, 0))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationID.String(), nil, s.driverToken)
		require.Equal(t, http.StatusForbidden, w.Code, "他人の予約のキャンセルは403になるべき")
	})

	s.Run("存在しない予約", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+uuid.NewString(), nil, s.driverToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
