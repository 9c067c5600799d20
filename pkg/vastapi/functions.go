package vastapi

import (
	"fmt"
	"unsafe"

	"github.com/vastai/go-vastapi/pkg/dl"
)

// Functions is the device-bound driver table. Every func is non-nil and
// DecGetFormat is non-zero once LoadFunctions succeeds. C int maps to int32, size_t to uintptr and
// pointers to driver structs to the opaque types in this package.
type Functions struct {
	handle
	Memory

	// Encoder.
	EncAllowOptimizeDelay    func(ctx EncodeContext) int32
	EncWait                  func(ctx EncodeContext, dpy Display, pic EncodePicture) int32
	EncPickNext              func(ctx EncodeContext, width, height, isAV1 int32, picOut *EncodePicture) int32
	EncFreeVastBuffer2       func(ctx EncodeContext, dpy Display)
	EncH264DefaultRefPicList func(pic EncodePicture, rpl0, rpl1 *EncodePicture, rplSize *int32)
	EncAV1InitPictureParams  func(ctx EncodeContext, pic EncodePicture) int32
	EncAV1InitSliceParams    func(pic EncodePicture, slice EncodeSlice) int32
	EncIssuePrep             func(ctx EncodeContext, dpy Display, pic EncodePicture, sideData FrameSideData, nbItem int32, opaque unsafe.Pointer, isLtN50, frameNumber, width, height int32) int32
	EncIssue                 func(ctx EncodeContext, dpy Display, pic EncodePicture, sideData FrameSideData, nbItem int32, width, height int32, codec CodecID, isGeN44 int32, params EncodeParam, count int32) int32
	EncCreateConfig          func(ctx EncodeContext, dpy Display, frNum, frDen, isQScale int32, profile *int32) int32
	EncInitVastParams        func(ctx EncodeContext, isRangeJPEG, isAV1, is10Bit int32, gopSize, maxBFrames *int32, isVUI, num, den int32) int32
	EncFree                  func(ctx EncodeContext, pic EncodePicture) int32
	EncFlushEncoder          func(ctx EncodeContext, pkt unsafe.Pointer) int32
	EncCheckAV1OnePass       func(ctx EncodeContext, pkt unsafe.Pointer) int32
	EncTwoPassOnlyIssue      func(ctx EncodeContext, pic EncodePicture, pkt unsafe.Pointer) int32
	EncOnePassIssue          func(ctx EncodeContext, pic EncodePicture, pkt unsafe.Pointer) int32
	EncGetEncodeOutput       func(ctx EncodeContext, pic EncodePicture, pkt unsafe.Pointer) int32
	EncAllocOutputBuffer     func(ctx EncodeContext, dpy Display, isAV1, width, height int32, bufID *BufferID) int32

	// Hardware context.
	HWPixFmtFromFourcc func(fourcc uint32) PixFmt
	HWFormatFromFourcc func(fourcc uint32) FormatDescriptor
	HWGetImageFormat   func(ctx DeviceContext, pixFmt PixFmt, imageFormat *ImageFormat) int32
	HWDeviceInit       func(ctx DeviceContext, hwctx HWDeviceContext) int32
	HWDeviceCreate     func(hwctx HWDeviceContext, device string) unsafe.Pointer
	HWDeviceFree       func(hwctx HWDeviceContext, userOpaque unsafe.Pointer)
	HWDMABufferFree    func(opaque unsafe.Pointer, data DMAHandle)
	HWBufferFree       func(opaque unsafe.Pointer, data unsafe.Pointer)
	HWUnmapFrame       func(ctx Context, data unsafe.Pointer, width, height int32)
	HWMapFrame         func(ctx Context, dstFmt PixFmt, width, height, flags int32) int32
	HWGetConstraints   func(ctx Context, constraints Constraint, attrList *unsafe.Pointer) int32
	HWSurfaceAddress   func(hwctx HWDeviceContext, data unsafe.Pointer, frameAddr *uint64, isGetAddress int32) int32
	HWTransferData     func(ctx Context, dmaAddr uint64, dmaSize int32, data unsafe.Pointer, fd, srcType, isHostToHW int32) int32
	HWFramesInit       func(ctx Context, pixFmt PixFmt, poolSize, frameFlags int32) int32
	HWTestDeriveWork   func(ctx Context, pixFmt PixFmt, data unsafe.Pointer) int32
	HWAllocDMABuffer   func(ctx Context) DMAHandle

	// Decoder.
	DecMakeParamBuffer  func(ctx DecodeContext, pic DecodePicture, typ int32, data unsafe.Pointer, size uintptr) int32
	DecPicture          func(ctx DecodeContext, pic DecodePicture) int32
	DecUninit           func(ctx DecodeContext)
	DecDestroyBuffers   func(ctx DecodeContext, pic DecodePicture)
	DecMakeSliceBuffer  func(ctx DecodeContext, pic DecodePicture, params unsafe.Pointer, paramsSize uintptr, slice unsafe.Pointer, sliceSize uintptr) int32
	DecQuerySurfaceAttr func(ctx DecodeContext, attr *unsafe.Pointer) int32
	DecQueryProfileList func(ctx DecodeContext, list *unsafe.Pointer) int32
	DecCreateConfig     func(ctx DecodeContext, profile Profile) int32
	DecSyncSurface      func(ctx DecodeContext, surface SurfaceID) int32
	DecCreateContext    func(ctx DecodeContext, width, height, flag int32, renderTargets *SurfaceID, numRender int32) int32
	DecDestroyConfig    func(ctx DecodeContext) int32
	// DecGetFormat is the address of vastapi_dec_get_format. It takes a
	// SurfaceAttrib by value, which purego can only pass on darwin, so it
	// is resolved but not bound. Use DecGetFormatFunc or call it from cgo.
	DecGetFormat uintptr

	// Filter pipeline.
	FilterPipelineUninit func(params FilterParams, nbFilter int32)
	FilterRenderPicture  func(params FilterParams) int32
	FilterCreateConfig   func(params FilterParams) int32
	FilterCreateContext  func(params FilterParams, outputWidth, outputHeight uint32, frames HWFramesContext) int32

	// Generic surface, buffer and image calls.
	QueryVendorString func(dpy Display) string
	DestroyConfig     func(dpy Display, config ConfigID) Status
	CreateSurfaces    func(dpy Display, format, width, height uint32, surfaces *SurfaceID, numSurfaces uint32, attribs *SurfaceAttrib, numAttribs uint32) Status
	CreateContext     func(dpy Display, config ConfigID, pictureWidth, pictureHeight, flag int32, renderTargets *SurfaceID, numRenderTargets int32, context *ContextID) Status
	DestroyContext    func(dpy Display, context ContextID) Status
	CreateBuffer      func(dpy Display, context ContextID, typ BufferType, size, numElements uint32, data unsafe.Pointer, bufID *BufferID) Status
	CreateBuffer2     func(dpy Display, context ContextID, typ BufferType, width, height uint32, unitSize, pitch *uint32, bufID *BufferID) Status
	MapBuffer         func(dpy Display, bufID BufferID, pbuf *unsafe.Pointer) Status
	UnmapBuffer       func(dpy Display, bufID BufferID) Status
	DestroyBuffer     func(dpy Display, bufID BufferID) Status
	SyncSurface       func(dpy Display, renderTarget SurfaceID) Status
	CreateImage       func(dpy Display, format ImageFormat, width, height int32, image Image) Status
	DestroyImage      func(dpy Display, image ImageID) Status
	DeriveImage       func(dpy Display, surface SurfaceID, image Image) Status
	DestroyDMAHandle  func(dpy Display, dmaHandle unsafe.Pointer) Status
	DMAWriteBuffer    func(dpy Display, dstSocAddr uint64, size int32, dmaHandle unsafe.Pointer) Status
	DMAReadBuffer     func(dpy Display, srcSocAddr uint64, size int32, dmaHandle unsafe.Pointer) Status
}

// symbols lists the table in the order the driver contract fixes. Changing a
// name here without a matching driver release breaks loading.
func (f *Functions) symbols() []Symbol {
	return []Symbol{
		required("allow_optimize_delay", &f.EncAllowOptimizeDelay),
		required("vaenc_wait", &f.EncWait),
		required("vastapi_encode_pick_next", &f.EncPickNext),
		required("vastapi_encode_free_vast_buffer2", &f.EncFreeVastBuffer2),
		required("vastapi_encode_h264_default_ref_pic_list", &f.EncH264DefaultRefPicList),
		required("vaenc_av1_init_picture_params", &f.EncAV1InitPictureParams),
		required("vaenc_av1_init_slice_params", &f.EncAV1InitSliceParams),
		required("vaenc_issue_prep", &f.EncIssuePrep),
		required("vaenc_issue", &f.EncIssue),
		required("vaenc_create_config", &f.EncCreateConfig),
		required("vastapi_encode_init_vast_params", &f.EncInitVastParams),
		required("vastapi_encode_free", &f.EncFree),
		required("vaenc_flush_encoder", &f.EncFlushEncoder),
		required("vaenc_check_av1_1pass", &f.EncCheckAV1OnePass),
		required("vaenc_2passonly_issue", &f.EncTwoPassOnlyIssue),
		required("vaenc_1pass_issue", &f.EncOnePassIssue),
		required("vaenc_get_encode_output", &f.EncGetEncodeOutput),
		required("vaenc_alloc_output_buffer", &f.EncAllocOutputBuffer),

		required("vastapi_pix_fmt_from_fourcc", &f.HWPixFmtFromFourcc),
		required("vastapi_format_from_fourcc", &f.HWFormatFromFourcc),
		required("vastapi_get_image_format", &f.HWGetImageFormat),
		required("vastapi_device_init_private", &f.HWDeviceInit),
		required("vastapi_device_create_private", &f.HWDeviceCreate),
		required("vastapi_device_free_private", &f.HWDeviceFree),
		required("vastapi_dmabuffer_free", &f.HWDMABufferFree),
		required("vastapi_buffer_free", &f.HWBufferFree),
		required("vastapi_unmap_frame_private", &f.HWUnmapFrame),
		required("vastapi_map_frame_private", &f.HWMapFrame),
		required("vastapi_get_constraints", &f.HWGetConstraints),
		required("vastapi_surface_address", &f.HWSurfaceAddress),
		required("vastapi_transfer_data", &f.HWTransferData),
		required("vastapi_frames_init_private", &f.HWFramesInit),
		required("vastapi_test_derive_work", &f.HWTestDeriveWork),
		required("vastapi_dmabuff_alloc", &f.HWAllocDMABuffer),

		// "picutre" and "pofiles" are the driver's spelling.
		required("vastapi_decode_make_param_buffer", &f.DecMakeParamBuffer),
		required("vastapi_decode_picutre", &f.DecPicture),
		required("vastapi_decode_uninit", &f.DecUninit),
		required("vastapi_decode_destroy_buffers", &f.DecDestroyBuffers),
		required("vastapi_decode_make_slice_buffer", &f.DecMakeSliceBuffer),
		required("vastapi_query_surface_attr", &f.DecQuerySurfaceAttr),
		required("vastapi_query_pofiles_list", &f.DecQueryProfileList),
		required("vastapi_create_dec_config", &f.DecCreateConfig),
		required("vastapi_sync_surface", &f.DecSyncSurface),
		required("vastapi_create_dec_context", &f.DecCreateContext),
		required("vastapi_destroy_config", &f.DecDestroyConfig),
		required("vastapi_dec_get_format", &f.DecGetFormat),

		required("vastfilter_pipeline_uninit", &f.FilterPipelineUninit),
		required("vastfilter_render_picture", &f.FilterRenderPicture),
		required("vafilter_create_config", &f.FilterCreateConfig),
		required("vafilter_creat_context", &f.FilterCreateContext),

		required("vastQueryVendorString", &f.QueryVendorString),
		required("vastDestroyConfig", &f.DestroyConfig),
		required("vastCreateSurfaces", &f.CreateSurfaces),
		required("vastCreateContext", &f.CreateContext),
		required("vastDestroyContext", &f.DestroyContext),
		required("vastCreateBuffer", &f.CreateBuffer),
		required("vastCreateBuffer2", &f.CreateBuffer2),
		required("vastMapBuffer", &f.MapBuffer),
		required("vastUnmapBuffer", &f.UnmapBuffer),
		required("vastDestroyBuffer", &f.DestroyBuffer),
		required("vastSyncSurface", &f.SyncSurface),
		required("vastCreateImage", &f.CreateImage),
		required("vastDestroyImage", &f.DestroyImage),
		required("vastDeriveImage", &f.DeriveImage),
		required("vastDestroyDmaHandle", &f.DestroyDMAHandle),
		required("vastDmaWriteBuf", &f.DMAWriteBuffer),
		required("vastDmaReadBuf", &f.DMAReadBuffer),

		required(symbolGetMemory, &f.GetMemory),
		required(symbolFreeMemory, &f.FreeMemory),
	}
}

// DecGetFormatFunc binds DecGetFormat to a Go func. It fails with
// dl.ErrSignature where purego cannot pass structs by value.
func (f *Functions) DecGetFormatFunc() (func(attr SurfaceAttrib) PixFmt, error) {
	var fn func(attr SurfaceAttrib) PixFmt
	if err := dl.RegisterFunc(&fn, f.DecGetFormat); err != nil {
		return nil, fmt.Errorf("vastapi_dec_get_format: %w", err)
	}
	return fn, nil
}
