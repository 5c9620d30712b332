package http

func (h *Handler) getServerVersion(ac *ActionContext) (any, error) {
	build := h.services.AppInfoService.GetBuildInfo(ac.Context())
	build.Version = h.services.AppInfoService.GetAppVersion(ac.Context())
	return build, nil
}
