package health

import (
	"net/http"

	"github.com/you-humble/storefront/internal/transport/http/response"
)

// HealthCheck reports that the process serves requests. The backend is not probed.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "SERVING"})
}
