package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMessage(t *testing.T) {
	assert.Equal(t, "Thank%20you%21", EncodeMessage("Thank you!"))
	assert.Equal(t, "a%0Ab", EncodeMessage("a\nb"))
	assert.Equal(t, "LKR%20500", EncodeMessage("LKR 500"))
}

func TestClickToChatURL(t *testing.T) {
	url := ClickToChatURL("94777990902", "Order Bill")
	assert.Equal(t, "https://wa.me/94777990902?text=Order%20Bill", url)
}
