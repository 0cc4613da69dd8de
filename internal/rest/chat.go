package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hariyo-app/hariyo/api"
	"github.com/hariyo-app/hariyo/chat"
	"github.com/hariyo-app/hariyo/i18n"
)

// SendChatMessage forwards one user turn to the assistant.
func (a *API) SendChatMessage(c *gin.Context) {
	if a.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured"})
		return
	}

	proto := &api.ChatMessageProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := a.printer(c)
	reply, err := a.chat.Send(c.Request.Context(), proto.Message)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"warning": p.Sprintf(i18n.MsgEmptyChatMessage)})
		return
	case errors.Is(err, chat.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"warning": p.Sprintf(i18n.MsgChatBusy)})
		return
	case errors.Is(err, chat.ErrConnectivity):
		c.JSON(http.StatusBadGateway, gin.H{"error": p.Sprintf(i18n.MsgChatUnreachable)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": p.Sprintf(i18n.MsgChatFailed)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ChatTranscript returns the conversation so far, localizing error
// entries for display.
func (a *API) ChatTranscript(c *gin.Context) {
	if a.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured"})
		return
	}

	p := a.printer(c)
	entries := a.chat.Transcript()
	out := make([]api.ChatEntry, 0, len(entries))
	for _, e := range entries {
		entry := api.ChatEntry{Kind: string(e.Kind), Text: e.Text}
		switch {
		case errors.Is(e.Err, chat.ErrConnectivity):
			entry.Text = p.Sprintf(i18n.MsgChatUnreachable)
		case e.Kind == chat.EntryError:
			entry.Text = p.Sprintf(i18n.MsgChatFailed)
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, out)
}
