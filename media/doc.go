// Package media turns decoded images, audio samples and video frames into
// run-length encoded byte streams.
//
// None of the formats produced here have a header. Their layouts are:
//
//	image:  [value u8][count u8] ...
//	audio:  [value int16 LE][count u8] ...
//	video:  [element count u32 BE][value u8][count u8] ... per frame, frames
//	        concatenated
//
// Images and video frames are converted to 8-bit grayscale first.
package media
