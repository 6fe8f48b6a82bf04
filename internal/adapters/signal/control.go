package signal

func (ctl *WatchController) handlePing(
	conn *WsWatchConn,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	_ = ctl.sendJSON(conn, resp)
}
