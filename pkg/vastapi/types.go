package vastapi

import "unsafe"

// Display is the driver's window-system independent display handle.
type Display unsafe.Pointer

// Opaque pointers to driver-owned structures. Their layout belongs to the
// driver; Go code only passes them back.
type (
	EncodeContext    unsafe.Pointer // VASTAPIEncodeContext *
	EncodePicture    unsafe.Pointer // VASTAPIEncodePicture *
	EncodeSlice      unsafe.Pointer // VASTAPIEncodeSlice *
	EncodeParam      unsafe.Pointer // VASTAPIEncodeParam *
	FrameSideData    unsafe.Pointer // VaEncFrameSideData *
	DeviceContext    unsafe.Pointer // VASTAPIDeviceContext *
	HWDeviceContext  unsafe.Pointer // AVVASTAPIDeviceContext *
	HWFramesContext  unsafe.Pointer // AVVASTAPIFramesContext *
	Context          unsafe.Pointer // VASTAPIContext *
	DecodeContext    unsafe.Pointer // VASTVADecCtx *
	DecodePicture    unsafe.Pointer // VASTAPIDecodePicture *
	FilterParams     unsafe.Pointer // VASTFilterParamer *
	FormatDescriptor unsafe.Pointer // VASTAPIFormatDescriptor *
	DMAHandle        unsafe.Pointer // VASTAPIDmaHandle *
	Constraint       unsafe.Pointer // VastapiConstraint *
	ImageFormat      unsafe.Pointer // VASTImageFormat *
	Image            unsafe.Pointer // VASTImage *
)

// GenericID is the driver's object identifier.
type GenericID = uint32

type (
	ConfigID  = GenericID
	ContextID = GenericID
	SurfaceID = GenericID
	BufferID  = GenericID
	ImageID   = GenericID
)

// InvalidID marks an unset identifier.
const InvalidID GenericID = 0xffffffff

// Profile is a codec profile.
type Profile int32

const (
	ProfileNone                    Profile = -1
	ProfileMPEG2Simple             Profile = 0
	ProfileMPEG2Main               Profile = 1
	ProfileMPEG4Simple             Profile = 2
	ProfileMPEG4AdvancedSimple     Profile = 3
	ProfileMPEG4Main               Profile = 4
	ProfileH264Baseline            Profile = 5
	ProfileH264Main                Profile = 6
	ProfileH264High                Profile = 7
	ProfileVC1Simple               Profile = 8
	ProfileVC1Main                 Profile = 9
	ProfileVC1Advanced             Profile = 10
	ProfileH263Baseline            Profile = 11
	ProfileJPEGBaseline            Profile = 12
	ProfileH264ConstrainedBaseline Profile = 13
	ProfileVP8Version0_3           Profile = 14
	ProfileH264MultiviewHigh       Profile = 15
	ProfileH264StereoHigh          Profile = 16
	ProfileHEVCMain                Profile = 17
	ProfileHEVCMain10              Profile = 18
	ProfileHEVCMainIntra           Profile = 19
	ProfileVP9Profile0             Profile = 20
	ProfileVP9Profile1             Profile = 21
	ProfileVP9Profile2             Profile = 22
	ProfileVP9Profile3             Profile = 23
	ProfileAV1Main                 Profile = 24
	ProfileAV1High                 Profile = 25
	ProfileVPP                     Profile = 26
	ProfileHantroHEVCMainStill     Profile = 27
	ProfileHantroH264High10        Profile = 28
	ProfileHantroVPP               Profile = 29
)

// PixFmt is the driver's pixel format enumeration.
type PixFmt int32

const (
	PixFmtNone PixFmt = -1

	PixFmtNV12 PixFmt = iota
	PixFmtYUV420P
	PixFmtYUV422P
	PixFmtUYVY422
	PixFmtYUYV422
	PixFmtYUV411P
	PixFmtYUV440P
	PixFmtYUV444P
	PixFmtGray8
	PixFmtP010
	PixFmtBGRA
	PixFmtBGR0
	PixFmtRGBA
	PixFmtRGB0
	PixFmtABGR
	PixFmtXBGR
	PixFmtARGB
	PixFmtXRGB
	PixFmtYUV420P10LE
	PixFmtYUVJ420P
	PixFmtBayerBGGR8
	PixFmtBayerRGGB8
	PixFmtBayerGBRG8
	PixFmtBayerGRBG8
	PixFmtY210
	PixFmtYUV420P10
)

// BufferType selects the kind of parameter buffer passed to CreateBuffer.
type BufferType int32

const (
	PictureParameterBufferType BufferType = iota
	IQMatrixBufferType
	BitPlaneBufferType
	SliceGroupMapBufferType
	SliceParameterBufferType
	SliceDataBufferType
	MacroblockParameterBufferType
	ResidualDataBufferType
	DeblockingParameterBufferType
	ImageBufferType
	ProtectedSliceDataBufferType
	QMatrixBufferType
	HuffmanTableBufferType
	ProbabilityBufferType

	EncCodedBufferType                 BufferType = 21
	EncSequenceParameterBufferType     BufferType = 22
	EncPictureParameterBufferType      BufferType = 23
	EncSliceParameterBufferType        BufferType = 24
	EncPackedHeaderParameterBufferType BufferType = 25
	EncPackedHeaderDataBufferType      BufferType = 26
	EncMiscParameterBufferType         BufferType = 27
	EncMacroblockParameterBufferType   BufferType = 28
	EncMacroblockMapBufferType         BufferType = 29
	EncQPBufferType                    BufferType = 30
	ProcPipelineParameterBufferType    BufferType = 41
	ProcFilterParameterBufferType      BufferType = 42
)

// CodecID identifies the encoder codec in EncIssue.
type CodecID int32

const (
	CodecH264 CodecID = iota
	CodecH265
	CodecUnknown
)

// GenericValue mirrors VASTGenericValue: a type tag followed by an 8-byte
// union of int32, float, pointer or function pointer.
type GenericValue struct {
	Type  int32
	_     [4]byte
	Value uint64
}

// SurfaceAttrib mirrors VASTSurfaceAttrib. It is passed by value to
// DecGetFormat.
type SurfaceAttrib struct {
	Type  int32
	Flags uint32
	Value GenericValue
}
