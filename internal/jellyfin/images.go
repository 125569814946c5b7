package jellyfin

import (
	"fmt"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// imageQuality is part of the compatibility contract with the server's
// image endpoint, along with the exact path segments below.
const imageQuality = "90"

// imageURL formats the image endpoint URL for one tag. An empty tag
// yields an empty string.
func (c *Client) imageURL(itemID string, imageType domain.ImageType, tag string) string {
	if tag == "" {
		return ""
	}
	return fmt.Sprintf("%s/Items/%s/Images/%s?tag=%s&quality=%s",
		c.baseURL, itemID, imageType, tag, imageQuality)
}

// ImageURL derives the URL for an item's image of the requested kind,
// in fixed priority order:
//
//  1. Backdrop requests use the first entry of the backdrop-tag list.
//  2. Logo requests use the logo tag.
//  3. Anything else falls back to the primary tag, keeping the
//     requested kind as the image type in the URL.
//  4. No usable tag yields "", meaning no image available, not an error.
func (c *Client) ImageURL(item domain.CatalogItem, imageType domain.ImageType) string {
	if imageType == domain.ImageBackdrop && len(item.BackdropImageTags) > 0 {
		return c.imageURL(item.ID, domain.ImageBackdrop, item.BackdropImageTags[0])
	}
	if imageType == domain.ImageLogo && item.LogoImageTag != "" {
		return c.imageURL(item.ID, domain.ImageLogo, item.LogoImageTag)
	}
	if item.PrimaryImageTag != "" {
		return c.imageURL(item.ID, imageType, item.PrimaryImageTag)
	}
	return ""
}
