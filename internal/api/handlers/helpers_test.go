package handlers_test

import (
	"performance-backend/internal/auth"

	"github.com/google/uuid"
)

var (
	testEmployeeID = uuid.MustParse("3f0c3d7e-8f5b-4a43-9a67-0a4c9f7c2b11")
	testOrgID      = uuid.MustParse("6a1e2b8d-7a0f-4a3e-8c1d-1f2e3d4c5b6a")
	testClaims     = &auth.AuthClaims{EmployeeID: testEmployeeID, OrganisationID: testOrgID, Email: "jane.doe@acme.io"}
)
