package service_test

import (
	"encoding/json"
	"testing"

	"motorsport-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableID_TracksPresence(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantNil bool
	}{
		{name: "omitted", body: `{"last_name":"Nguyen"}`, wantSet: false, wantNil: true},
		{name: "explicit null", body: `{"home_address_id":null}`, wantSet: true, wantNil: true},
		{name: "uuid", body: `{"home_address_id":"` + id.String() + `"}`, wantSet: true, wantNil: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req service.UpdateDriverRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantSet, req.HomeAddressID.Set)
			assert.Equal(t, tt.wantNil, req.HomeAddressID.Value == nil)
			assert.Equal(t, tt.wantSet && tt.wantNil, req.HomeAddressID.IsNull())
			assert.False(t, req.ManagementAddressID.Set)
			if !tt.wantNil {
				assert.Equal(t, id, *req.HomeAddressID.Value)
			}
		})
	}
}

func TestNullableID_RejectsMalformedID(t *testing.T) {
	var req service.UpdateCarRequest
	assert.Error(t, json.Unmarshal([]byte(`{"team_id":"not-a-uuid"}`), &req))
}

func TestNullableID_Marshal(t *testing.T) {
	id := uuid.New()

	out, err := json.Marshal(service.SomeID(id))
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(out))

	out, err = json.Marshal(service.NullID)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestUpdateRequest_NullableIDPassesValidation(t *testing.T) {
	req := service.UpdateTeamRequest{BusinessAddressID: service.NullID}
	assert.NoError(t, service.ValidateStruct(service.NewValidator(), &req))
}
